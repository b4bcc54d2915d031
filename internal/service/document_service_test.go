package service

import (
	"context"
	"strings"
	"testing"

	"ai-chatbot-be/internal/constant"
	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/pkg/apperror"
	"ai-chatbot-be/internal/repository/memory"
	"ai-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type documentFixture struct {
	svc       IDocumentService
	chat      IChatService
	documents *memory.DocumentRepository
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	factory := unitofwork.NewRepositoryFactory(newTestDB(t))
	documents := memory.NewDocumentRepository()
	return &documentFixture{
		svc:       NewDocumentService(factory, documents, nopLogger{}),
		chat:      NewChatService(factory, documents, &stubGateway{reply: "ok"}, nopLogger{}),
		documents: documents,
	}
}

const sampleCSV = "name, role\nJane, engineer\nJoe, designer\n"

func TestUploadCSVCreatesSessionAndCachesContext(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	res, err := f.svc.Upload(ctx, nil, "team.csv", []byte(sampleCSV), "")
	require.NoError(t, err)
	assert.Equal(t, "File processed successfully", res.Message)
	assert.Equal(t, "csv", res.Kind)
	assert.NotEmpty(t, res.SessionId)
	assert.False(t, res.Truncated)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 2, res.Columns)
	assert.Contains(t, res.Preview, "Jane")

	doc, found := f.documents.Get(res.SessionId)
	require.True(t, found)
	assert.Contains(t, doc.Text, "Joe, designer")

	session, err := f.chat.GetSession(ctx, nil, res.SessionId)
	require.NoError(t, err)
	assert.Equal(t, constant.DocumentSessionTitle, session.Session.Title)
}

func TestUploadAttachesToExistingSession(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	created, err := f.chat.CreateSession(ctx, nil)
	require.NoError(t, err)

	res, err := f.svc.Upload(ctx, nil, "team.csv", []byte(sampleCSV), created.SessionId)
	require.NoError(t, err)
	assert.Equal(t, created.SessionId, res.SessionId)

	// The existing title is untouched.
	session, err := f.chat.GetSession(ctx, nil, created.SessionId)
	require.NoError(t, err)
	assert.Equal(t, constant.NewSessionTitle, session.Session.Title)
}

func TestUploadReplacesPreviousContext(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	first, err := f.svc.Upload(ctx, nil, "a.csv", []byte("col\nfirst\n"), "")
	require.NoError(t, err)

	_, err = f.svc.Upload(ctx, nil, "b.csv", []byte("col\nsecond\n"), first.SessionId)
	require.NoError(t, err)

	doc, found := f.documents.Get(first.SessionId)
	require.True(t, found)
	assert.Contains(t, doc.Text, "second")
	assert.NotContains(t, doc.Text, "first")
}

func TestUploadRejectsBadInput(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, nil, "", []byte("x"), "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = f.svc.Upload(ctx, nil, "notes.txt", []byte("plain text"), "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = f.svc.Upload(ctx, nil, "empty.csv", nil, "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestUploadTruncatesLargeDocuments(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	var sb strings.Builder
	sb.WriteString("col\n")
	for sb.Len() < constant.MaxDocumentContextChars+500 {
		sb.WriteString("this row pads the document well past the context cap\n")
	}

	res, err := f.svc.Upload(ctx, nil, "big.csv", []byte(sb.String()), "")
	require.NoError(t, err)
	assert.True(t, res.Truncated)

	doc, found := f.documents.Get(res.SessionId)
	require.True(t, found)
	assert.True(t, strings.HasSuffix(doc.Text, constant.TruncationMarker))
	assert.Len(t, []rune(doc.Text), constant.MaxDocumentContextChars+len(constant.TruncationMarker))
}

func TestUploadRespectsSessionOwnership(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()
	owner := uuid.New()

	created, err := f.chat.CreateSession(ctx, &owner)
	require.NoError(t, err)

	_, err = f.svc.Upload(ctx, nil, "team.csv", []byte(sampleCSV), created.SessionId)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestClearSingleSession(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	res, err := f.svc.Upload(ctx, nil, "team.csv", []byte(sampleCSV), "")
	require.NoError(t, err)

	clearRes, err := f.svc.Clear(ctx, nil, &dto.ClearDocumentRequest{SessionId: res.SessionId})
	require.NoError(t, err)
	assert.Equal(t, res.SessionId, clearRes.SessionId)

	_, found := f.documents.Get(res.SessionId)
	assert.False(t, found)
}

func TestClearAllSessions(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	a, err := f.svc.Upload(ctx, nil, "a.csv", []byte(sampleCSV), "")
	require.NoError(t, err)
	b, err := f.svc.Upload(ctx, nil, "b.csv", []byte(sampleCSV), "")
	require.NoError(t, err)

	_, err = f.svc.Clear(ctx, nil, &dto.ClearDocumentRequest{})
	require.NoError(t, err)

	_, foundA := f.documents.Get(a.SessionId)
	_, foundB := f.documents.Get(b.SessionId)
	assert.False(t, foundA)
	assert.False(t, foundB)
}
