package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"dietary-advisor/internal/domain/entity"
	"dietary-advisor/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "advisor.db")), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: database.NowUTC,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.HealthProfile{}, &entity.Comment{}, &entity.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newProfile(name string, createdAt time.Time) *entity.HealthProfile {
	return &entity.HealthProfile{
		Name:            name,
		Age:             34,
		Gender:          entity.GenderMale,
		BodyWeight:      "80kg",
		DietaryHabit:    "vegetarian",
		DailyActivities: "gym 3x/week",
		HealthGoal:      "lose weight",
		AIAdvice:        "Eat more lentils",
		ShareText:       name + " shares a plan",
		CreatedAt:       createdAt,
	}
}

func TestHealthProfileCreateThenFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewHealthProfileRepository()
	ctx := context.Background()

	profile := newProfile("Alex", time.Time{})
	profile.Medication = "metformin"
	if err := repo.Create(ctx, db, profile); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if profile.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if profile.CreatedAt.IsZero() {
		t.Fatal("expected an assigned creation time")
	}

	found, err := repo.FindByID(ctx, db, profile.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found == nil {
		t.Fatal("expected profile to be found")
	}
	if drift := found.CreatedAt.Sub(profile.CreatedAt).Abs(); drift > time.Millisecond {
		t.Errorf("expected created_at %s, got %s", profile.CreatedAt, found.CreatedAt)
	}
	found.CreatedAt = profile.CreatedAt
	if *found != *profile {
		t.Errorf("stored profile differs:\nwant %+v\ngot  %+v", *profile, *found)
	}
}

func TestHealthProfileFindByIDMissing(t *testing.T) {
	db := newTestDB(t)

	found, err := NewHealthProfileRepository().FindByID(context.Background(), db, 9999)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for unknown id, got %+v", found)
	}
}

func TestHealthProfileFindAllOldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewHealthProfileRepository()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for _, p := range []*entity.HealthProfile{
		newProfile("Second", base.Add(time.Hour)),
		newProfile("First", base),
		newProfile("Third", base.Add(2*time.Hour)),
	} {
		if err := repo.Create(ctx, db, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	profiles, err := repo.FindAll(ctx, db)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	want := []string{"First", "Second", "Third"}
	if len(profiles) != len(want) {
		t.Fatalf("expected %d profiles, got %d", len(want), len(profiles))
	}
	for i, name := range want {
		if profiles[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, profiles[i].Name)
		}
	}
}

func TestHealthProfileSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewHealthProfileRepository()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	alex := newProfile("Alex", base)
	alex.HealthProblem = "High Cholesterol"
	sam := newProfile("Sam", base.Add(time.Minute))
	sam.DietaryHabit = "omnivore"
	sam.HealthGoal = "build muscle"
	sam.AIAdvice = "Protein at every meal"
	sam.ShareText = "100% committed"
	for _, p := range []*entity.HealthProfile{alex, sam} {
		if err := repo.Create(ctx, db, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name ignoring case", query: "aLEx", want: []string{"Alex"}},
		{name: "health problem", query: "cholesterol", want: []string{"Alex"}},
		{name: "advice text", query: "protein", want: []string{"Sam"}},
		{name: "shared field oldest first", query: "gym", want: []string{"Alex", "Sam"}},
		{name: "percent is literal", query: "100%", want: []string{"Sam"}},
		{name: "underscore is literal", query: "a_e", want: nil},
		{name: "no match", query: "paleo", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, err := repo.Search(ctx, db, tt.query)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(profiles) != len(tt.want) {
				t.Fatalf("expected %v, got %d profiles", tt.want, len(profiles))
			}
			for i, name := range tt.want {
				if profiles[i].Name != name {
					t.Errorf("position %d: expected %s, got %s", i, name, profiles[i].Name)
				}
			}
		})
	}
}

func TestCommentQueries(t *testing.T) {
	db := newTestDB(t)
	profiles := NewHealthProfileRepository()
	comments := NewCommentRepository()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	first := newProfile("Alex", base)
	other := newProfile("Sam", base)
	for _, p := range []*entity.HealthProfile{first, other} {
		if err := profiles.Create(ctx, db, p); err != nil {
			t.Fatalf("Create profile failed: %v", err)
		}
	}

	top := &entity.Comment{HealthProfileID: first.ID, AuthorName: "Jo", Content: "Nice plan", CreatedAt: base.Add(time.Minute)}
	if err := comments.Create(ctx, db, top); err != nil {
		t.Fatalf("Create comment failed: %v", err)
	}
	olderReply := &entity.Comment{HealthProfileID: first.ID, ParentCommentID: &top.ID, AuthorName: "Kim", Content: "Agreed", CreatedAt: base.Add(2 * time.Minute)}
	newerReply := &entity.Comment{HealthProfileID: first.ID, ParentCommentID: &top.ID, AuthorName: "Lee", Content: "Same", CreatedAt: base.Add(3 * time.Minute)}
	foreign := &entity.Comment{HealthProfileID: other.ID, AuthorName: "Max", Content: "Elsewhere", CreatedAt: base.Add(4 * time.Minute)}
	for _, c := range []*entity.Comment{olderReply, newerReply, foreign} {
		if err := comments.Create(ctx, db, c); err != nil {
			t.Fatalf("Create comment failed: %v", err)
		}
	}

	t.Run("profile comments newest first", func(t *testing.T) {
		got, err := comments.FindByHealthProfileID(ctx, db, first.ID)
		if err != nil {
			t.Fatalf("FindByHealthProfileID failed: %v", err)
		}
		want := []int64{newerReply.ID, olderReply.ID, top.ID}
		if len(got) != len(want) {
			t.Fatalf("expected %d comments, got %d", len(want), len(got))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d: expected id %d, got %d", i, id, got[i].ID)
			}
			if got[i].HealthProfileID != first.ID {
				t.Errorf("comment %d belongs to profile %d", got[i].ID, got[i].HealthProfileID)
			}
		}
	})

	t.Run("replies newest first", func(t *testing.T) {
		got, err := comments.FindReplies(ctx, db, top.ID)
		if err != nil {
			t.Fatalf("FindReplies failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != newerReply.ID || got[1].ID != olderReply.ID {
			t.Fatalf("unexpected replies %+v", got)
		}
		for _, reply := range got {
			if reply.ParentCommentID == nil || *reply.ParentCommentID != top.ID {
				t.Errorf("reply %d has wrong parent", reply.ID)
			}
		}
	})

	t.Run("replies of a leaf are empty", func(t *testing.T) {
		got, err := comments.FindReplies(ctx, db, foreign.ID)
		if err != nil {
			t.Fatalf("FindReplies failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no replies, got %d", len(got))
		}
	})

	t.Run("reply counts", func(t *testing.T) {
		counts, err := comments.CountRepliesByHealthProfileID(ctx, db, first.ID)
		if err != nil {
			t.Fatalf("CountRepliesByHealthProfileID failed: %v", err)
		}
		if len(counts) != 1 || counts[top.ID] != 2 {
			t.Errorf("unexpected counts %v", counts)
		}
	})

	t.Run("find by id", func(t *testing.T) {
		got, err := comments.FindByID(ctx, db, olderReply.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if got == nil || !got.IsReply() || got.Content != "Agreed" {
			t.Errorf("unexpected comment %+v", got)
		}
		missing, err := comments.FindByID(ctx, db, 424242)
		if err != nil || missing != nil {
			t.Errorf("expected nil, nil for unknown id, got %+v, %v", missing, err)
		}
	})
}

func TestAuditLogCreate(t *testing.T) {
	db := newTestDB(t)

	log := &entity.AuditLog{
		Action:   entity.AuditActionHealthProfileCreate,
		Metadata: entity.JSON{"entity": "health_profile", "entity_id": "1"},
	}
	if err := NewAuditLogRepository().Create(context.Background(), db, log); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var stored entity.AuditLog
	if err := db.First(&stored, log.ID).Error; err != nil {
		t.Fatalf("failed to reload audit log: %v", err)
	}
	if stored.Action != entity.AuditActionHealthProfileCreate || stored.Metadata["entity_id"] != "1" {
		t.Errorf("unexpected audit log %+v", stored)
	}
}

func TestAuditLogFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuditLogRepository()
	ctx := context.Background()

	for _, action := range []string{entity.AuditActionHealthProfileCreate, entity.AuditActionCommentCreate, entity.AuditActionCommentCreate} {
		if err := repo.Create(ctx, db, &entity.AuditLog{Action: action, Metadata: entity.JSON{"entity": "x"}}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	all, err := repo.FindAll(ctx, db, "")
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 3 || all[0].ID != 3 {
		t.Errorf("expected three logs newest first, got %+v", all)
	}

	comments, _ := repo.FindAll(ctx, db, entity.AuditActionCommentCreate)
	if len(comments) != 2 {
		t.Errorf("expected two comment logs, got %d", len(comments))
	}

	found, err := repo.FindByID(ctx, db, 1)
	if err != nil || found == nil || found.Action != entity.AuditActionHealthProfileCreate {
		t.Errorf("unexpected FindByID result %+v, %v", found, err)
	}

	missing, err := repo.FindByID(ctx, db, 42)
	if missing != nil || err != nil {
		t.Errorf("expected nil, nil for unknown id, got %+v, %v", missing, err)
	}
}
