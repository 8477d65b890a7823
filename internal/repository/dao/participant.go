package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrOrderIDExists       = errors.New("order already registered")
)

type Attendee struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
	TeamName string `json:"teamName"`
}

type Participant struct {
	ID uint `gorm:"primaryKey"`

	OrderID    string `gorm:"unique;not null"`
	ActivityID uint   `gorm:"not null;index"`
	Kind       string `gorm:"not null"`

	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null;index"`
	Phone     string `gorm:"not null"`

	Attendees []Attendee `gorm:"serializer:json"`
	TeamName  string

	Amount          float64  `gorm:"not null"`
	NumberOfTickets int      `gorm:"not null"`
	TicketNumbers   []string `gorm:"serializer:json"`

	PaymentDate time.Time
	CreatedAt   time.Time `gorm:"not null"`
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_participants_order_id"`) {
			return Participant{}, ErrOrderIDExists
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByOrderID(ctx context.Context, orderID string) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, "order_id = ?", orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByActivityID(ctx context.Context, activityID uint) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at desc").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) FindByEmail(ctx context.Context, email string) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at desc").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}
