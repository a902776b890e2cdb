package api

import (
	"net/http" // HTTP status codes
	"time"     // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro_backend/internal/domain"
	"bistro_backend/internal/repository"
	"bistro_backend/internal/utils"
)

// menuCacheKey caches the full public menu listing. Every admin menu
// mutation deletes this key, so the store stays the source of truth.
const menuCacheKey = "menu:all"

const menuCacheTTL = 60 * time.Second

// ListMenuHandler returns the full menu, served from the cache when warm
func ListMenuHandler(menu repository.MenuRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if rdb != nil {
			var cached []domain.MenuItem
			found, err := utils.GetCache(ctx, rdb, menuCacheKey, &cached)
			if err != nil {
				logrus.WithField("error", err).Warn("menu cache read failed")
			} else if found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		items, err := menu.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}
		if rdb != nil {
			if err := utils.SetCache(ctx, rdb, menuCacheKey, items, menuCacheTTL); err != nil {
				logrus.WithField("error", err).Warn("menu cache write failed")
			}
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetMenuItemHandler returns a single menu item. An unknown id yields a
// null body, not a 404.
func GetMenuItemHandler(menu repository.MenuRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu id"})
			return
		}
		item, err := menu.GetByID(c.Request.Context(), id)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// CreateMenuItemHandler inserts a menu item (admin only)
func CreateMenuItemHandler(menu repository.MenuRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item domain.MenuItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, err := menu.Insert(c.Request.Context(), &item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert menu item"})
			return
		}
		invalidateMenuCache(c, rdb)
		c.JSON(http.StatusOK, result)
	}
}

// UpdateMenuItemHandler updates the whitelisted menu fields of one item
// (admin only). Fields outside the whitelist are never written.
func UpdateMenuItemHandler(menu repository.MenuRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu id"})
			return
		}
		var item domain.MenuItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, err := menu.UpdateFields(c.Request.Context(), id, &item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}
		invalidateMenuCache(c, rdb)
		c.JSON(http.StatusOK, result)
	}
}

// DeleteMenuItemHandler removes a menu item by id (admin only)
func DeleteMenuItemHandler(menu repository.MenuRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu id"})
			return
		}
		result, err := menu.DeleteByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
			return
		}
		invalidateMenuCache(c, rdb)
		c.JSON(http.StatusOK, result)
	}
}

func invalidateMenuCache(c *gin.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := utils.DeleteCache(c.Request.Context(), rdb, menuCacheKey); err != nil {
		logrus.WithField("error", err).Warn("menu cache invalidation failed")
	}
}
