package assistant

import (
	"context"
	"log"
	"time"
	"wandervoice/agi"
	"wandervoice/models"
	"wandervoice/utils"
)

const (
	completionMaxTokens   = 600
	completionTemperature = 0.2
)

// Fixed user-facing strings. Upstream errors never reach the user.
const (
	clarifyMessage = "ไม่พบข้อมูลที่เกี่ยวข้องในฐานข้อมูลนะครับ ลองระบุเพิ่มได้ไหม เช่น เมือง/ช่วงเวลา/งบประมาณ/สไตล์ที่ต้องการ แล้วผมจะค้นหาให้อีกครั้ง"
	failureMessage = "ขอโทษครับ เกิดข้อผิดพลาดในการประมวลผล ลองใหม่อีกครั้งได้นะครับ"
)

// Assistant runs the grounded recommendation pipeline for each user turn:
// classify, retrieve, guard, assemble, call, render.
type Assistant struct {
	Search    func(ctx context.Context, query string) models.SearchResults
	Completer agi.Completer
	Sessions  *SessionStore

	// Persist mirrors finished messages to the chat buffer; nil disables it.
	Persist func(models.ChatMessage)
}

func New(search func(ctx context.Context, query string) models.SearchResults, completer agi.Completer, persist func(models.ChatMessage)) *Assistant {
	return &Assistant{
		Search:    search,
		Completer: completer,
		Sessions:  NewSessionStore(),
		Persist:   persist,
	}
}

// HandleTurn processes one user message start to finish. Turns on the same
// session queue strictly; the reply is always a user-safe assistant message.
func (a *Assistant) HandleTurn(ctx context.Context, sessionID, userInput string) models.ChatMessage {
	sess := a.Sessions.Get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	history := make([]models.ChatMessage, len(sess.history))
	copy(history, sess.history)

	userMsg := models.ChatMessage{
		MessageID: utils.GetUUID(),
		SessionID: sessionID,
		Role:      agi.RoleUser,
		Content:   userInput,
		Timestamp: time.Now(),
	}
	sess.append(userMsg)
	a.persist(userMsg)

	recoIntent := IsRecommendationIntent(userInput)

	results := a.Search(ctx, userInput)
	total := results.Total()

	// The grounding guard: never let the model invent recommendations when
	// retrieval came back empty.
	if recoIntent && total == 0 {
		reply := a.reply(sessionID, clarifyMessage, nil)
		sess.append(reply)
		a.persist(reply)
		return reply
	}

	var resultsForPrompt *models.SearchResults
	if total > 0 {
		resultsForPrompt = &results
	}
	msgs := BuildModelMessages(history, userInput, resultsForPrompt)

	content, err := a.Completer.Complete(ctx, agi.Request{
		Model:       agi.DefaultModel,
		Messages:    msgs,
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	})
	if err != nil {
		log.Println("Assistant completion error:", err)
		reply := a.reply(sessionID, failureMessage, nil)
		sess.append(reply)
		a.persist(reply)
		return reply
	}

	reply := a.reply(sessionID, content, resultsForPrompt)
	sess.append(reply)
	a.persist(reply)
	return reply
}

func (a *Assistant) reply(sessionID, content string, results *models.SearchResults) models.ChatMessage {
	return models.ChatMessage{
		MessageID:     utils.GetUUID(),
		SessionID:     sessionID,
		Role:          agi.RoleAssistant,
		Content:       content,
		Timestamp:     time.Now(),
		SearchResults: results,
	}
}

func (a *Assistant) persist(msg models.ChatMessage) {
	if a.Persist != nil {
		a.Persist(msg)
	}
}
