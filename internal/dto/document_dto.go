package dto

type UploadDocumentResponse struct {
	Message   string `json:"message"`
	SessionId string `json:"session_id"`
	Kind      string `json:"kind"`
	Preview   string `json:"preview"`
	Truncated bool   `json:"truncated"`

	Pages     int    `json:"pages,omitempty"`
	Rows      int    `json:"rows,omitempty"`
	Columns   int    `json:"columns,omitempty"`
	Slides    int    `json:"slides,omitempty"`
	SheetName string `json:"sheet_name,omitempty"`
}

type ClearDocumentRequest struct {
	SessionId string `json:"session_id,omitempty"`
}

type ClearDocumentResponse struct {
	Message   string `json:"message"`
	SessionId string `json:"session_id,omitempty"`
}
