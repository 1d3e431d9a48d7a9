// Package translation resolves short catalogue strings between languages with
// a remote translator, an offline dictionary and a write-once cache.
package translation

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"galeria/backend/internal/logger"
)

// DefaultTimeout bounds one remote translation call.
const DefaultTimeout = 3 * time.Second

var errNoRemote = errors.New("no remote translator configured")

// Stats counts how translations were resolved since start.
type Stats struct {
	Remote     int64 `json:"remote"`
	Dictionary int64 `json:"dictionary"`
	Fallback   int64 `json:"fallback"`
	CacheHits  int64 `json:"cacheHits"`
}

// Engine translates text and never fails: when both the remote translator and
// the dictionary give nothing, the input comes back unchanged.
type Engine struct {
	remote  RemoteTranslator
	dict    *Dictionary
	cache   Cache
	timeout time.Duration
	group   singleflight.Group

	remoteHits atomic.Int64
	dictHits   atomic.Int64
	fallbacks  atomic.Int64
	cacheHits  atomic.Int64
}

// NewEngine wires the fallback chain. remote and dict may be nil; a nil cache
// gets a fresh MemoryCache.
func NewEngine(remote RemoteTranslator, dict *Dictionary, cache Cache, timeout time.Duration) *Engine {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Engine{
		remote:  remote,
		dict:    dict,
		cache:   cache,
		timeout: timeout,
	}
}

// Translate returns text in targetLang. Equal languages return text untouched
// without touching the cache or the network. Concurrent calls for the same key
// share one lookup that outlives any single caller; a caller that gives up
// gets its input back.
func (e *Engine) Translate(ctx context.Context, text, sourceLang, targetLang string) string {
	src, tgt := NormalizeLanguage(sourceLang), NormalizeLanguage(targetLang)
	if src == "" || tgt == "" || src == tgt {
		return text
	}
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if ctx.Err() != nil {
		return text
	}

	key := CacheKey(src, tgt, text)
	if v, ok := e.cache.Get(ctx, key); ok {
		e.cacheHits.Add(1)
		return v
	}

	shared := context.WithoutCancel(ctx)
	ch := e.group.DoChan(key, func() (any, error) {
		if v, ok := e.cache.Get(shared, key); ok {
			e.cacheHits.Add(1)
			return v, nil
		}
		return e.resolve(shared, key, text, src, tgt), nil
	})

	select {
	case res := <-ch:
		return res.Val.(string)
	case <-ctx.Done():
		return text
	}
}

func (e *Engine) resolve(ctx context.Context, key, text, src, tgt string) string {
	translated, err := e.callRemote(ctx, text, src, tgt)
	if err == nil {
		e.remoteHits.Add(1)
		e.cache.Add(ctx, key, translated)
		return translated
	}
	if !errors.Is(err, errNoRemote) {
		logger.Debug("remote translation failed", "module", "service", "action", "translate", "resource", "translation", "result", "failed", "source", src, "target", tgt, "error", err)
	}

	if e.dict != nil {
		if v, ok := e.dict.Lookup(text, src, tgt); ok {
			e.dictHits.Add(1)
			e.cache.Add(ctx, key, v)
			return v
		}
	}

	e.fallbacks.Add(1)
	// a cancelled remote call says nothing about the text
	if !errors.Is(err, context.Canceled) {
		e.cache.Add(ctx, key, text)
	}
	return text
}

func (e *Engine) callRemote(ctx context.Context, text, src, tgt string) (string, error) {
	if e.remote == nil {
		return "", errNoRemote
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	out, err := e.remote.Translate(ctx, text, src, tgt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyTranslation
	}
	if strings.TrimSpace(out) == strings.TrimSpace(text) {
		return "", ErrUnchanged
	}
	return out, nil
}

// Stats returns resolution counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Remote:     e.remoteHits.Load(),
		Dictionary: e.dictHits.Load(),
		Fallback:   e.fallbacks.Load(),
		CacheHits:  e.cacheHits.Load(),
	}
}

// CacheLen returns the number of cached translations, or -1 when the cache cannot tell.
func (e *Engine) CacheLen() int {
	if s, ok := e.cache.(Sizer); ok {
		return s.Len()
	}
	return -1
}

// Provider names the remote translator in use.
func (e *Engine) Provider() string {
	if e.remote == nil {
		return ProviderNone
	}
	return e.remote.Name()
}
