package memory

import (
	"ai-chatbot-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// DocumentRepository is the process-local document context cache, keyed
// strictly by chat session identifier. Entries are replaced wholesale on
// every Put and are lost on restart; this cache is intentionally not
// durable and not shared across instances.
type DocumentRepository struct {
	cache *cache.Cache
}

func NewDocumentRepository() *DocumentRepository {
	// Entries live until explicitly cleared; no janitor needed.
	return &DocumentRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *DocumentRepository) Put(doc *entity.DocumentContext) {
	r.cache.Set(doc.SessionId, doc, cache.NoExpiration)
}

func (r *DocumentRepository) Get(sessionId string) (*entity.DocumentContext, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.DocumentContext), true
	}
	return nil, false
}

func (r *DocumentRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}

func (r *DocumentRepository) Flush() {
	r.cache.Flush()
}
