package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/studio-service/internal/api/handlers"
)

const (
	msgRateLimited = "Rate limit exceeded. Try again later."

	defaultLimiterIdleTTL = 10 * time.Minute
)

// RateLimitOptions параметры ограничения частоты запросов
type RateLimitOptions struct {
	RequestsPerMinute int
	Burst             int
	// TrustProxy разрешает брать адрес клиента из X-Forwarded-For / X-Real-IP.
	// Включать только за обратным прокси, который перезаписывает эти заголовки.
	TrustProxy bool
	// IdleTTL через сколько неактивный лимитер удаляется из памяти
	IdleTTL time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore лимитеры по IP клиента
// Неактивные лимитеры вычищаются не чаще раза в idleTTL при обращении к store
type limiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newLimiterStore(limit rate.Limit, burst int, idleTTL time.Duration) *limiterStore {
	return &limiterStore{
		limiters:  make(map[string]*clientLimiter),
		limit:     limit,
		burst:     burst,
		idleTTL:   idleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (s *limiterStore) allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.idleTTL {
		s.sweep(now)
	}

	entry, ok := s.limiters[ip]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.limiters[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// sweep удаляет лимитеры, не использованные дольше idleTTL
func (s *limiterStore) sweep(now time.Time) {
	for ip, entry := range s.limiters {
		if now.Sub(entry.lastSeen) >= s.idleTTL {
			delete(s.limiters, ip)
		}
	}
	s.lastSweep = now
}

func (s *limiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// RateLimit ограничивает число запросов с одного IP
// Применяется к публичным POST эндпоинтам
func RateLimit(opts RateLimitOptions, logger Logger) mux.MiddlewareFunc {
	return rateLimit(newRateLimitStore(opts), opts.TrustProxy, logger)
}

func newRateLimitStore(opts RateLimitOptions) *limiterStore {
	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
	}

	idleTTL := opts.IdleTTL
	if idleTTL <= 0 {
		idleTTL = defaultLimiterIdleTTL
	}

	return newLimiterStore(limit, opts.Burst, idleTTL)
}

func rateLimit(store *limiterStore, trustProxy bool, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trustProxy)
			if !store.allow(ip) {
				logger.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
				handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
