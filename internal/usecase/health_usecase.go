package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

// RecordCounter reports record totals per entity kind.
type RecordCounter interface {
	Counts(ctx context.Context) map[string]int
}

type HealthStatus struct {
	Status      string         `json:"status"`
	Records     map[string]int `json:"records"`
	RateLimiter string         `json:"rate_limiter"`
}

type healthUsecase struct {
	counter        RecordCounter
	redisAvailable func() bool
}

func NewHealthUsecase(counter RecordCounter, redisAvailable func() bool) HealthUsecase {
	return &healthUsecase{
		counter:        counter,
		redisAvailable: redisAvailable,
	}
}

func (u *healthUsecase) Check(ctx context.Context) HealthStatus {
	limiter := "memory"
	if u.redisAvailable != nil && u.redisAvailable() {
		limiter = "redis"
	}
	return HealthStatus{
		Status:      "ok",
		Records:     u.counter.Counts(ctx),
		RateLimiter: limiter,
	}
}
