package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"recipebox/internal/models"
)

const (
	tagCacheKeyPrefix = "tag:"
	allTagsCacheKey   = "tags:all"
	tagCacheTTL       = 30 * time.Minute
)

type TagRepository interface {
	Create(tag *models.Tag) error
	FindAll() ([]models.Tag, error)
	FindByID(id uint) (*models.Tag, error)
	FindByIDs(ids []uint) ([]models.Tag, error)
	Exists(id uint) (bool, error)
	Update(tag *models.Tag) error
	Delete(id uint) error
}

type tagRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func tagCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", tagCacheKeyPrefix, id)
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db, redis: nil, ctx: context.Background()}
}

// NewCachedTagRepository caches tag reads in Redis. Tags are small,
// read-heavy lookup data, so a cache-aside layer pays off on list views.
func NewCachedTagRepository(db *gorm.DB, redisClient *redis.Client) TagRepository {
	return &tagRepository{db: db, redis: redisClient, ctx: context.Background()}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		return err
	}
	r.invalidateAll()
	return nil
}

func (r *tagRepository) FindAll() ([]models.Tag, error) {
	if r.redis == nil {
		var tags []models.Tag
		err := r.db.Order("name").Find(&tags).Error
		return tags, err
	}

	cached, err := r.redis.Get(r.ctx, allTagsCacheKey).Result()
	if err == nil {
		var tags []models.Tag
		if err := json.Unmarshal([]byte(cached), &tags); err == nil {
			return tags, nil
		}
	}

	var tags []models.Tag
	if err := r.db.Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tags); err == nil {
		if err := r.redis.Set(r.ctx, allTagsCacheKey, data, tagCacheTTL).Err(); err != nil {
			log.Printf("Failed to cache tag list: %v", err)
		}
	}
	return tags, nil
}

func (r *tagRepository) FindByID(id uint) (*models.Tag, error) {
	if r.redis != nil {
		cached, err := r.redis.Get(r.ctx, tagCacheKey(id)).Result()
		if err == nil {
			var tag models.Tag
			if err := json.Unmarshal([]byte(cached), &tag); err == nil {
				return &tag, nil
			}
		}
	}

	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(tag); err == nil {
			if err := r.redis.Set(r.ctx, tagCacheKey(id), data, tagCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache tag %d: %v", id, err)
			}
		}
	}
	return &tag, nil
}

func (r *tagRepository) FindByIDs(ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Find(&tags, ids).Error
	return tags, err
}

func (r *tagRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *tagRepository) Update(tag *models.Tag) error {
	if err := r.db.Save(tag).Error; err != nil {
		return err
	}
	r.invalidate(tag.ID)
	r.invalidateAll()
	return nil
}

func (r *tagRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Tag{}, id).Error; err != nil {
		return err
	}
	r.invalidate(id)
	r.invalidateAll()
	return nil
}

func (r *tagRepository) invalidate(id uint) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(r.ctx, tagCacheKey(id)).Err(); err != nil {
		log.Printf("Failed to invalidate tag cache %d: %v", id, err)
	}
}

func (r *tagRepository) invalidateAll() {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(r.ctx, allTagsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate tag list cache: %v", err)
	}
}
