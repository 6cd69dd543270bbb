package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"dietary-advisor/internal/delivery/dto"
	"dietary-advisor/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var errStorage = errors.New("storage unavailable")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeProfileRepo struct {
	profiles map[int64]*entity.HealthProfile
	nextID   int64
	findErr  error
	finds    int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[int64]*entity.HealthProfile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, db *gorm.DB, profile *entity.HealthProfile) error {
	r.nextID++
	profile.ID = r.nextID
	profile.CreatedAt = time.Date(2024, 1, 1, 0, 0, int(r.nextID), 0, time.UTC)
	stored := *profile
	r.profiles[profile.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.HealthProfile, error) {
	r.finds++
	if r.findErr != nil {
		return nil, r.findErr
	}
	profile, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	found := *profile
	return &found, nil
}

func (r *fakeProfileRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.HealthProfile, error) {
	profiles := make([]entity.HealthProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profiles = append(profiles, *p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}

func (r *fakeProfileRepo) Search(ctx context.Context, db *gorm.DB, query string) ([]entity.HealthProfile, error) {
	all, _ := r.FindAll(ctx, db)
	var matches []entity.HealthProfile
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name+" "+p.DietaryHabit+" "+p.HealthGoal), strings.ToLower(query)) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

type fakeCommentRepo struct {
	comments  []entity.Comment
	createErr error
}

func (r *fakeCommentRepo) Create(ctx context.Context, db *gorm.DB, comment *entity.Comment) error {
	if r.createErr != nil {
		return r.createErr
	}
	comment.ID = int64(len(r.comments) + 1)
	comment.CreatedAt = time.Date(2024, 1, 1, 0, 0, int(comment.ID), 0, time.UTC)
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Comment, error) {
	for _, c := range r.comments {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeCommentRepo) newestFirst(keep func(entity.Comment) bool) []entity.Comment {
	var out []entity.Comment
	for i := len(r.comments) - 1; i >= 0; i-- {
		if keep(r.comments[i]) {
			out = append(out, r.comments[i])
		}
	}
	return out
}

func (r *fakeCommentRepo) FindByHealthProfileID(ctx context.Context, db *gorm.DB, healthProfileID int64) ([]entity.Comment, error) {
	return r.newestFirst(func(c entity.Comment) bool { return c.HealthProfileID == healthProfileID }), nil
}

func (r *fakeCommentRepo) FindReplies(ctx context.Context, db *gorm.DB, parentCommentID int64) ([]entity.Comment, error) {
	return r.newestFirst(func(c entity.Comment) bool {
		return c.ParentCommentID != nil && *c.ParentCommentID == parentCommentID
	}), nil
}

func (r *fakeCommentRepo) CountRepliesByHealthProfileID(ctx context.Context, db *gorm.DB, healthProfileID int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	for _, c := range r.comments {
		if c.HealthProfileID == healthProfileID && c.ParentCommentID != nil {
			counts[*c.ParentCommentID]++
		}
	}
	return counts, nil
}

type fakeCache struct {
	entries map[int64]entity.HealthProfile
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[int64]entity.HealthProfile)}
}

func (c *fakeCache) Get(ctx context.Context, id int64) (*entity.HealthProfile, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	profile, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (c *fakeCache) Set(ctx context.Context, profile *entity.HealthProfile) error {
	c.entries[profile.ID] = *profile
	return nil
}

type fakeAudit struct {
	actions []string
	err     error
}

func (a *fakeAudit) LogCreate(ctx context.Context, db *gorm.DB, action string, entityName string, entityID string, newValue interface{}) error {
	a.actions = append(a.actions, action+":"+entityID)
	return a.err
}

func alexInput() dto.HealthProfileInput {
	return dto.HealthProfileInput{
		Name:            "Alex",
		Age:             "34",
		Gender:          "male",
		BodyWeight:      "80kg",
		DietaryHabit:    "vegetarian",
		DailyActivities: "gym 3x/week",
		HealthGoal:      "lose weight",
	}
}
