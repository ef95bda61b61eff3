package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/azaria-morake/slotflow/internal/domain"
	"github.com/redis/go-redis/v9"
)

const activeCoursesKey = "courses:active"

// CourseCache keeps the active-course listing in Redis for a short TTL.
// Booked counts and cohort numbers in cached entries can lag by up to the
// TTL; the booking path never reads from here.
type CourseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCourseCache(client *redis.Client, ttl time.Duration) *CourseCache {
	return &CourseCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *CourseCache) GetActive(ctx context.Context) ([]*domain.Course, error) {
	data, err := c.client.Get(ctx, activeCoursesKey).Result()
	if err != nil {
		return nil, err
	}

	var courses []*domain.Course
	if err = json.Unmarshal([]byte(data), &courses); err != nil {
		return nil, err
	}

	return courses, nil
}

func (c *CourseCache) SetActive(ctx context.Context, courses []*domain.Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, activeCoursesKey, data, c.ttl).Err()
}

func (c *CourseCache) InvalidateActive(ctx context.Context) error {
	return c.client.Del(ctx, activeCoursesKey).Err()
}
