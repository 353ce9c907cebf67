package repositories

import (
	"time"

	"recipe-api/db"
	"recipe-api/entities"
)

type tokenPgRepository struct {
	db db.Database
}

func NewTokenPgRepository(database db.Database) TokenRepository {
	return &tokenPgRepository{db: database}
}

func (r *tokenPgRepository) Create(token *entities.AuthToken) error {
	return r.db.GetDB().Create(token).Error
}

func (r *tokenPgRepository) GetByKey(key string) (*entities.AuthToken, error) {
	var token entities.AuthToken
	err := r.db.GetDB().Where("key = ?", key).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenPgRepository) GetLiveByUserID(userID string, now time.Time) (*entities.AuthToken, error) {
	var token entities.AuthToken
	err := r.db.GetDB().
		Where("user_id = ? AND expires_at > ?", userID, now).
		Order("expires_at DESC").
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenPgRepository) DeleteByUserID(userID string) error {
	return r.db.GetDB().Where("user_id = ?", userID).Delete(&entities.AuthToken{}).Error
}
