package flash

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	cookieName = "flash_id"
	keyTTL     = 10 * time.Minute
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Store keeps one-shot messages between a redirect and the next page render,
// keyed by an anonymous cookie. Messages are consumed on first read.
type Store struct {
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewStore(redisClient *redis.Client, log *logger.Logger) *Store {
	return &Store{redisClient: redisClient, logger: log}
}

func (s *Store) Success(c *gin.Context, text string) {
	s.add(c, Message{Level: LevelSuccess, Text: text})
}

func (s *Store) Error(c *gin.Context, text string) {
	s.add(c, Message{Level: LevelError, Text: text})
}

func (s *Store) add(c *gin.Context, msg Message) {
	if s.redisClient == nil {
		return
	}

	id, err := c.Cookie(cookieName)
	if err != nil || id == "" {
		id = uuid.New().String()
		c.SetCookie(cookieName, id, int(keyTTL.Seconds()), "/", "", false, true)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("Failed to marshal flash message: %v", err)
		return
	}

	ctx := c.Request.Context()
	key := flashKey(id)
	if err := s.redisClient.RPush(ctx, key, data).Err(); err != nil {
		s.logger.Error("Failed to store flash message: %v", err)
		return
	}
	s.redisClient.Expire(ctx, key, keyTTL)
}

// Take returns and clears the pending messages for the requesting visitor.
func (s *Store) Take(c *gin.Context) []Message {
	if s.redisClient == nil {
		return nil
	}

	id, err := c.Cookie(cookieName)
	if err != nil || id == "" {
		return nil
	}

	ctx := c.Request.Context()
	key := flashKey(id)
	raw, err := s.redisClient.LRange(ctx, key, 0, -1).Result()
	if err != nil || len(raw) == 0 {
		return nil
	}
	s.redisClient.Del(ctx, key)

	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			s.logger.Warn("Dropping malformed flash message: %v", err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages
}

func flashKey(id string) string {
	return fmt.Sprintf("flash:%s", id)
}
