package remote

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"arise/internal/storage"
)

const connectTimeout = 10 * time.Second

// Connect dials the remote document database.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// Store mirrors the app's "one document per user" persistence: preference and
// progress snapshots live under a single user document and are written with
// merge semantics (upsert + $set of the changed subtree only).
type Store struct {
	users *mongo.Collection
}

func NewStore(client *mongo.Client, database string) *Store {
	return &Store{users: client.Database(database).Collection("users")}
}

type preferencesDoc struct {
	WakeWeekday        *int             `bson:"wake_weekday,omitempty"`
	WakeWeekend        *int             `bson:"wake_weekend,omitempty"`
	SleepHoursWeekday  *float64         `bson:"sleep_hours_weekday,omitempty"`
	SleepHoursWeekend  *float64         `bson:"sleep_hours_weekend,omitempty"`
	WorkoutHoursPerDay *float64         `bson:"workout_hours_per_day,omitempty"`
	WorkoutDays        []int            `bson:"workout_days,omitempty"`
	ScreenLimitHours   *float64         `bson:"screen_limit_hours,omitempty"`
	WeightLbs          *int             `bson:"weight_lbs,omitempty"`
	TakeColdShowers    bool             `bson:"take_cold_showers"`
	ColdShowerDays     []int            `bson:"cold_shower_days,omitempty"`
	SelectedActivities map[string][]int `bson:"selected_activities,omitempty"`
	MajorFocus         *string          `bson:"major_focus,omitempty"`
	AddictionDays      *int             `bson:"addiction_days_per_week,omitempty"`
}

type progressDoc struct {
	TotalXP       int            `bson:"total_xp"`
	Streak        int            `bson:"streak"`
	LastResetDate string         `bson:"last_reset_date"`
	Skills        map[string]int `bson:"skills"`
}

type userDoc struct {
	UserID      string          `bson:"user_id"`
	Preferences *preferencesDoc `bson:"preferences,omitempty"`
	Progress    *progressDoc    `bson:"progress,omitempty"`
	UpdatedAt   time.Time       `bson:"updated_at"`
}

// LoadPreferences reads the user's preference snapshot; nil when the user has
// no stored preferences yet.
func (s *Store) LoadPreferences(ctx context.Context, userID string) (*storage.Preferences, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	if doc.Preferences == nil {
		return nil, nil
	}
	d := doc.Preferences
	return &storage.Preferences{
		Key:                userID,
		WakeWeekday:        d.WakeWeekday,
		WakeWeekend:        d.WakeWeekend,
		SleepHoursWeekday:  d.SleepHoursWeekday,
		SleepHoursWeekend:  d.SleepHoursWeekend,
		WorkoutHoursPerDay: d.WorkoutHoursPerDay,
		WorkoutDays:        d.WorkoutDays,
		ScreenLimitHours:   d.ScreenLimitHours,
		WeightLbs:          d.WeightLbs,
		TakeColdShowers:    d.TakeColdShowers,
		ColdShowerDays:     d.ColdShowerDays,
		SelectedActivities: d.SelectedActivities,
		MajorFocus:         d.MajorFocus,
		AddictionDays:      d.AddictionDays,
	}, nil
}

// LoadProgress reads the user's progress snapshot; nil when absent (the
// caller falls back to first-use defaults).
func (s *Store) LoadProgress(ctx context.Context, userID string) (*storage.Progress, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if doc.Progress == nil {
		return nil, nil
	}
	d := doc.Progress
	p := &storage.Progress{
		Key:           userID,
		TotalXP:       d.TotalXP,
		Streak:        d.Streak,
		LastResetDate: d.LastResetDate,
	}
	for skill, xp := range d.Skills {
		p.AddSkillXP(skill, xp)
	}
	return p, nil
}

// SavePreferences writes the preference subtree with merge semantics.
func (s *Store) SavePreferences(ctx context.Context, userID string, p *storage.Preferences) error {
	doc := preferencesDoc{
		WakeWeekday:        p.WakeWeekday,
		WakeWeekend:        p.WakeWeekend,
		SleepHoursWeekday:  p.SleepHoursWeekday,
		SleepHoursWeekend:  p.SleepHoursWeekend,
		WorkoutHoursPerDay: p.WorkoutHoursPerDay,
		WorkoutDays:        p.WorkoutDays,
		ScreenLimitHours:   p.ScreenLimitHours,
		WeightLbs:          p.WeightLbs,
		TakeColdShowers:    p.TakeColdShowers,
		ColdShowerDays:     p.ColdShowerDays,
		SelectedActivities: p.SelectedActivities,
		MajorFocus:         p.MajorFocus,
		AddictionDays:      p.AddictionDays,
	}
	return s.mergeWrite(ctx, userID, bson.M{"preferences": doc})
}

// SaveProgress writes the progress subtree with merge semantics.
func (s *Store) SaveProgress(ctx context.Context, userID string, p *storage.Progress) error {
	doc := progressDoc{
		TotalXP:       p.TotalXP,
		Streak:        p.Streak,
		LastResetDate: p.LastResetDate,
		Skills:        p.SkillXP(),
	}
	return s.mergeWrite(ctx, userID, bson.M{"progress": doc})
}

func (s *Store) mergeWrite(ctx context.Context, userID string, fields bson.M) error {
	set := bson.M{"user_id": userID, "updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	_, err := s.users.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("merge write: %w", err)
	}
	return nil
}
