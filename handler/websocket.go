package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"studio_manager/config"
	"studio_manager/database"
	"studio_manager/helper"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func getRedis() *redis.Client {
	redisOnce.Do(func() {
		addr := config.ConfigDefault("REDIS_ADDR", "localhost:6379")
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return redisClient
}

// SessionAvailability is the live payload pushed to storefront clients
// watching a session's spot count.
type SessionAvailability struct {
	SessionId   uint   `json:"sessionId"`
	Status      string `json:"status"`
	Capacity    int    `json:"capacity"`
	BookedCount int64  `json:"bookedCount"`
	SpotsLeft   int64  `json:"spotsLeft"`
}

// FetchSessionAvailability reads the current occupancy of a session.
func FetchSessionAvailability(sessionId uint) (SessionAvailability, error) {
	db := database.DB
	var session model.ClassSession
	if err := db.Preload("Item").First(&session, sessionId).Error; err != nil {
		return SessionAvailability{}, err
	}
	booked := helper.CountConfirmedBookings(db, sessionId)
	return SessionAvailability{
		SessionId:   sessionId,
		Status:      session.Status,
		Capacity:    session.Item.Capacity,
		BookedCount: booked,
		SpotsLeft:   int64(session.Item.Capacity) - booked,
	}, nil
}

// BroadcastSessionAvailability publishes the session's fresh occupancy to
// its Redis channel; every subscribed socket relays it to its clients.
func BroadcastSessionAvailability(sessionId uint) {
	availability, err := FetchSessionAvailability(sessionId)
	if err != nil {
		utils.Logger.Error().Err(err).Uint("session", sessionId).Msg("fetch session availability")
		return
	}
	payload, err := json.Marshal(availability)
	if err != nil {
		return
	}
	if err := getRedis().Publish(context.Background(), sessionChannel(sessionId), payload).Err(); err != nil {
		utils.Logger.Error().Err(err).Uint("session", sessionId).Msg("publish session availability")
	}
}

// SessionSocket handles one storefront WS connection watching a session.
func SessionSocket(c *websocket.Conn) {
	sessionIdStr := c.Params("id")
	id64, _ := strconv.ParseUint(sessionIdStr, 10, 64)
	sessionId := uint(id64)

	defer func() {
		mu.Lock()
		if clients[sessionId] != nil {
			delete(clients[sessionId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[sessionId] == nil {
		clients[sessionId] = make(map[*websocket.Conn]bool)
	}
	clients[sessionId][c] = true
	mu.Unlock()

	// First frame is the current state.
	if availability, err := FetchSessionAvailability(sessionId); err == nil {
		c.WriteJSON(availability)
	}

	pubsub := getRedis().Subscribe(context.Background(), sessionChannel(sessionId))
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[sessionId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[sessionId], conn)
			}
		}
		mu.Unlock()
	}
}

func sessionChannel(sessionId uint) string {
	return fmt.Sprintf("session:%d", sessionId)
}
