package repositories

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/you/invitesvc/domain"
	"gorm.io/gorm"
)

// RedemptionStoreImpl implements domain.RedemptionStore on a GORM database.
//
// Every write of one redemption happens inside a single database
// transaction. The conditional consume of the one-time code is the
// single-writer lock for a phone+purpose pair: of two redemptions racing on
// the same code exactly one flips is_used, the loser aborts before touching
// anything else. Together with the conditional used_at update on the invite
// and the unique index on users.phone, READ COMMITTED isolation is
// sufficient; no serializable mode or explicit row locks are required.
type RedemptionStoreImpl struct {
	db *gorm.DB
}

// NewRedemptionStore creates a new redemption store
func NewRedemptionStore(db *gorm.DB) domain.RedemptionStore {
	return &RedemptionStoreImpl{db: db}
}

// Redeem implements domain.RedemptionStore
func (s *RedemptionStoreImpl) Redeem(ctx context.Context, invite *domain.Invitation, code *domain.OneTimeCode) (*domain.RedemptionResult, error) {
	result := &domain.RedemptionResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Consume the one-time code first; losing this race aborts the
		// whole unit before any other write.
		res := tx.Model(&DBOneTimeCode{}).
			Where("id = ? AND is_used = ?", code.ID, false).
			Update("is_used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrCodeConsumed
		}

		user, created, err := reconcileUser(tx, invite)
		if err != nil {
			return err
		}
		result.User = user
		result.UserCreated = created

		switch invite.Role {
		case domain.RoleMechanic:
			err = reconcileMechanic(tx, user.ID, invite.Meta, result)
		case domain.RoleVendor:
			err = reconcileVendor(tx, user.ID, invite.Meta, result)
		default:
			err = fmt.Errorf("unsupported invite role %q", invite.Role)
		}
		if err != nil {
			return err
		}

		// Retire the invitation exactly once.
		res = tx.Model(&DBInvite{}).
			Where("id = ? AND used_at IS NULL", invite.ID).
			Update("used_at", time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInviteUsed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// reconcileUser finds the user owning the invitation's phone number, or
// creates one. An existing user with a different role aborts the unit.
func reconcileUser(tx *gorm.DB, invite *domain.Invitation) (*domain.User, bool, error) {
	var dbUser DBUser
	err := tx.Where("phone = ?", invite.Phone).First(&dbUser).Error

	switch {
	case err == nil:
		if dbUser.Role != invite.Role {
			return nil, false, domain.ErrRoleConflict
		}
		changed := false
		if dbUser.Status != domain.StatusActive {
			dbUser.Status = domain.StatusActive
			changed = true
		}
		if invite.Meta != nil && invite.Meta.FullName != "" && invite.Meta.FullName != dbUser.FullName {
			dbUser.FullName = invite.Meta.FullName
			changed = true
		}
		if changed {
			if err := tx.Save(&dbUser).Error; err != nil {
				return nil, false, err
			}
		}
		return userToDomain(&dbUser), false, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		fullName := "New user"
		if invite.Meta != nil && invite.Meta.FullName != "" {
			fullName = invite.Meta.FullName
		}
		dbUser = DBUser{
			Phone:    invite.Phone,
			FullName: fullName,
			Role:     invite.Role,
			Status:   domain.StatusActive,
			// Password stays unset; the set-password step happens after
			// redemption.
		}
		if err := tx.Create(&dbUser).Error; err != nil {
			return nil, false, err
		}
		return userToDomain(&dbUser), true, nil

	default:
		return nil, false, err
	}
}

// reconcileMechanic creates the mechanic profile on first redemption, or
// backfills a missing short code and reactivates the QR flag. A valid
// existing code is never regenerated.
func reconcileMechanic(tx *gorm.DB, userID uint, meta *domain.InviteMeta, result *domain.RedemptionResult) error {
	var mech DBMechanic
	err := tx.Where("user_id = ?", userID).First(&mech).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		code, err := uniqueMechanicCode(tx)
		if err != nil {
			return err
		}
		mech = DBMechanic{
			UserID:   userID,
			Code:     code,
			QRActive: true,
		}
		if meta != nil {
			mech.City = meta.City
			mech.Specialties = meta.Specialties
		}
		if err := tx.Create(&mech).Error; err != nil {
			return err
		}
		result.RoleEntityCreated = true
		result.CodeGenerated = true
		return nil
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if mech.Code == "" {
		code, err := uniqueMechanicCode(tx)
		if err != nil {
			return err
		}
		updates["code"] = code
		result.CodeGenerated = true
	}
	if !mech.QRActive {
		updates["qr_active"] = true
	}
	if len(updates) > 0 {
		if err := tx.Model(&mech).Updates(updates).Error; err != nil {
			return err
		}
	}
	return nil
}

// reconcileVendor creates the vendor profile on first redemption, or applies
// only the fields explicitly present in the invitation metadata.
func reconcileVendor(tx *gorm.DB, userID uint, meta *domain.InviteMeta, result *domain.RedemptionResult) error {
	var vendor DBVendor
	err := tx.Where("user_id = ?", userID).First(&vendor).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		vendor = DBVendor{
			UserID:    userID,
			StoreName: "New store",
			IsActive:  true,
		}
		if meta != nil {
			if meta.StoreName != "" {
				vendor.StoreName = meta.StoreName
			}
			vendor.City = meta.City
			vendor.AddressLine = meta.AddressLine
			vendor.Province = meta.Province
			vendor.PostalCode = meta.PostalCode
		}
		if err := tx.Create(&vendor).Error; err != nil {
			return err
		}
		result.RoleEntityCreated = true
		return nil
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if meta != nil {
		if meta.StoreName != "" {
			updates["store_name"] = meta.StoreName
		}
		if meta.City != "" {
			updates["city"] = meta.City
		}
		if meta.AddressLine != "" {
			updates["address_line"] = meta.AddressLine
		}
		if meta.Province != "" {
			updates["province"] = meta.Province
		}
		if meta.PostalCode != "" {
			updates["postal_code"] = meta.PostalCode
		}
	}
	if len(updates) > 0 {
		if err := tx.Model(&vendor).Updates(updates).Error; err != nil {
			return err
		}
	}
	return nil
}

// uniqueMechanicCode draws short codes until one is free. Collisions are
// rare at this length, so a handful of retries is plenty.
func uniqueMechanicCode(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := randomShortCode(6)
		if err != nil {
			return "", err
		}
		var count int64
		if err := tx.Model(&DBMechanic{}).Where("code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not allocate a unique mechanic code")
}

// randomShortCode generates an n-character code from an alphabet without
// look-alike characters.
func randomShortCode(n int) (string, error) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b), nil
}
