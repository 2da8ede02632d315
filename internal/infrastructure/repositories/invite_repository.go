package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/you/invitesvc/domain"
	"gorm.io/gorm"
)

// InviteRepositoryImpl implements domain.InviteRepository using GORM
type InviteRepositoryImpl struct {
	db *gorm.DB
}

// DBInvite represents the database model for Invitation. Meta is stored as a
// serialized JSON document so the optional hint fields stay schema-free.
type DBInvite struct {
	ID        uint   `gorm:"primaryKey"`
	CodeHash  string `gorm:"uniqueIndex;size:64"`
	Phone     string `gorm:"index;size:32"`
	Role      string `gorm:"size:32"`
	Meta      string
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
	UsedAt    *time.Time
}

// TableName returns the table name for GORM
func (DBInvite) TableName() string {
	return "invites"
}

// NewInviteRepository creates a new invitation repository
func NewInviteRepository(db *gorm.DB) domain.InviteRepository {
	return &InviteRepositoryImpl{db: db}
}

// Create implements domain.InviteRepository
func (r *InviteRepositoryImpl) Create(ctx context.Context, invite *domain.Invitation) error {
	dbInvite, err := inviteToDB(invite)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(dbInvite).Error; err != nil {
		return err
	}
	invite.ID = dbInvite.ID
	return nil
}

// FindByCodeHash implements domain.InviteRepository
func (r *InviteRepositoryImpl) FindByCodeHash(ctx context.Context, codeHash string) (*domain.Invitation, error) {
	var dbInvite DBInvite
	err := r.db.WithContext(ctx).Where("code_hash = ?", codeHash).First(&dbInvite).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrInviteNotFound
		}
		return nil, err
	}
	return inviteToDomain(&dbInvite)
}

func inviteToDB(invite *domain.Invitation) (*DBInvite, error) {
	meta := ""
	if invite.Meta != nil {
		raw, err := json.Marshal(invite.Meta)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal invite meta: %w", err)
		}
		meta = string(raw)
	}
	return &DBInvite{
		ID:        invite.ID,
		CodeHash:  invite.CodeHash,
		Phone:     invite.Phone,
		Role:      invite.Role,
		Meta:      meta,
		CreatedAt: invite.CreatedAt,
		ExpiresAt: invite.ExpiresAt,
		UsedAt:    invite.UsedAt,
	}, nil
}

func inviteToDomain(dbInvite *DBInvite) (*domain.Invitation, error) {
	var meta *domain.InviteMeta
	if dbInvite.Meta != "" {
		meta = &domain.InviteMeta{}
		if err := json.Unmarshal([]byte(dbInvite.Meta), meta); err != nil {
			return nil, fmt.Errorf("failed to unmarshal invite meta: %w", err)
		}
	}
	return &domain.Invitation{
		ID:        dbInvite.ID,
		CodeHash:  dbInvite.CodeHash,
		Phone:     dbInvite.Phone,
		Role:      dbInvite.Role,
		Meta:      meta,
		CreatedAt: dbInvite.CreatedAt,
		ExpiresAt: dbInvite.ExpiresAt,
		UsedAt:    dbInvite.UsedAt,
	}, nil
}
