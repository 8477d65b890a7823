package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrActivityNotFound = errors.New("activity not found")

type ScheduleItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

type Activity struct {
	ID uint `gorm:"primaryKey"`

	Kind  string `gorm:"not null;index"` // "sport" or "event"
	Name  string `gorm:"not null"`
	Venue string
	Date  time.Time
	Time  string

	// Category holds whatever reference the activity carries, either a
	// category id or a plain name. It is resolved against the categories
	// table at read time, not joined.
	Category string `gorm:"index"`

	Description     string
	RegistrationFee float64 `gorm:"default:0"`
	TeamSize        int     `gorm:"default:0"`
	Schedule        []ScheduleItem `gorm:"serializer:json"`
	Image           string
	ManualStatus    string

	MaximumParticipants   int `gorm:"default:0"`
	ConfirmedParticipants int `gorm:"default:0"`
	TotalParticipants     int `gorm:"default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) Insert(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).Create(&activity)
	if result.Error != nil {
		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) FindByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) FindByKind(ctx context.Context, kind string) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Where("kind = ?", kind).Order("created_at desc").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *ActivityDAO) Update(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).
		Model(&Activity{ID: activity.ID}).
		Clauses(clause.Returning{}).
		Select("*").
		Omit("id", "created_at").
		Updates(&activity)
	if result.Error != nil {
		return Activity{}, result.Error
	}

	if result.RowsAffected == 0 {
		return Activity{}, ErrActivityNotFound
	}

	return d.FindByID(ctx, activity.ID)
}

func (d *ActivityDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Activity{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

// IncrementParticipants bumps the registration counters atomically so
// concurrent checkouts do not lose updates.
func (d *ActivityDAO) IncrementParticipants(ctx context.Context, id uint, confirmed, total int) error {
	result := d.db.WithContext(ctx).
		Model(&Activity{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"confirmed_participants": gorm.Expr("confirmed_participants + ?", confirmed),
			"total_participants":     gorm.Expr("total_participants + ?", total),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}
