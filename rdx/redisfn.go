package rdx

import (
	"encoding/json"
	"log"
	"os"
	"time"
	"wandervoice/db"
	"wandervoice/globals"
	"wandervoice/models"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// --- Generic cache helpers ---

func SetWithExpiry(key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Println("Redis marshal error:", err)
		return
	}
	if err := Conn.Set(globals.Ctx, key, data, ttl).Err(); err != nil {
		log.Println("Redis Set error:", err)
	}
}

func GetInto(key string, out any) bool {
	data, err := Conn.Get(globals.Ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		log.Println("Redis unmarshal error for key", key, ":", err)
		return false
	}
	return true
}

// --- Chat history buffering ---

func chatKey(sessionID string) string {
	return "chat:" + sessionID + ":messages"
}

// AppendChatMessage buffers a turn in Redis; FlushChatMessages moves buffered
// turns to MongoDB in bulk.
func AppendChatMessage(msg models.ChatMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Println("Chat message marshal error:", err)
		return
	}
	if err := Conn.RPush(globals.Ctx, chatKey(msg.SessionID), data).Err(); err != nil {
		log.Println("Redis RPush error:", err)
	}
}

// Flush chat messages from Redis to MongoDB in bulk.
func FlushChatMessages() {
	ticker := time.NewTicker(30 * time.Second)
	for range ticker.C {
		keys, err := Conn.Keys(globals.Ctx, "chat:*:messages").Result()
		if err != nil {
			log.Println("Redis scan error:", err)
			continue
		}
		for _, key := range keys {
			msgs, err := Conn.LRange(globals.Ctx, key, 0, -1).Result()
			if err != nil {
				log.Println("Redis LRange error:", err)
				continue
			}
			if len(msgs) == 0 {
				continue
			}
			var messagesBulk []interface{}
			for _, mStr := range msgs {
				var m models.ChatMessage
				if err := json.Unmarshal([]byte(mStr), &m); err != nil {
					log.Println("JSON unmarshal error:", err)
					continue
				}
				messagesBulk = append(messagesBulk, m)
			}
			if len(messagesBulk) > 0 {
				_, err := db.ChatMessagesCollection.InsertMany(globals.Ctx, messagesBulk)
				if err != nil {
					log.Println("MongoDB InsertMany error:", err)
					continue
				}
				// Remove the key from Redis after successful insertion.
				Conn.Del(globals.Ctx, key)
			}
		}
	}
}
