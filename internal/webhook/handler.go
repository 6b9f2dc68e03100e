package webhook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"personal-agenda/internal/extraction"
	"personal-agenda/internal/model"
	"personal-agenda/internal/task"
	"personal-agenda/internal/user"
	pkgResponse "personal-agenda/pkg/response"
	"personal-agenda/pkg/whatsapp"
)

// HandleVerify answers the WhatsApp Cloud API subscription handshake:
// a GET with hub.mode=subscribe and the shared verify token, expecting the
// hub.challenge value echoed back as plain text.
func (h *Handler) HandleVerify(c *gin.Context) {
	ctx := c.Request.Context()

	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode != "subscribe" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported hub.mode"})
		return
	}
	if err := h.security.ValidateVerifyToken(token); err != nil {
		h.l.Warnf(ctx, "webhook verify handshake rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "verify token mismatch"})
		return
	}

	c.String(http.StatusOK, challenge)
}

// HandleWebhook processes inbound WhatsApp message deliveries.
// It responds with HTTP 200 immediately and processes each message in a
// background goroutine: the pipeline (LLM + persistence + reply) can take
// several seconds and the Cloud API retries on slow acknowledgements.
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	signature := c.GetHeader("X-Hub-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Webhook signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	payload, err := whatsapp.ParseWebhookPayload(body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse webhook payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	messages := payload.TextMessages()
	if len(messages) == 0 {
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "no text messages"})
		return
	}

	accepted := 0
	for _, msg := range messages {
		if err := h.security.CheckRateLimit(msg.From); err != nil {
			h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
			continue
		}
		accepted++
		go h.processMessageAsync(msg)
	}

	if accepted == 0 {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted", "messages": accepted})
}

// processMessageAsync runs one message through the pipeline in background.
func (h *Handler) processMessageAsync(msg whatsapp.Message) {
	// Detach from the HTTP request context, which is cancelled after the ack
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := h.processMessage(ctx, msg); err != nil {
		h.l.Errorf(ctx, "webhook: background processMessage failed: %v", err)
	}
}

// processMessage converts one inbound phrase into a stored task and replies
// to the sender. Every outcome, success or failure, produces exactly one
// outbound message.
func (h *Handler) processMessage(ctx context.Context, msg whatsapp.Message) error {
	owner, err := h.userUC.GetByPhone(ctx, msg.From)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return h.sender.SendText(ctx, msg.From,
				"Este número no está registrado. Creá una cuenta primero para agendar tareas por WhatsApp.")
		}
		return err
	}

	// "today" is resolved once at this boundary, in the service timezone,
	// and threaded through the pipeline explicitly.
	today := time.Now().In(h.loc)

	draft, err := h.extractionUC.Extract(ctx, extraction.ExtractInput{
		Phrase: msg.Text.Body,
		Today:  today,
	})
	if err != nil {
		h.l.Warnf(ctx, "webhook: extraction failed for %s: %v", owner.ID, err)
		return h.sender.SendText(ctx, msg.From, extractionFallbackMessage(err))
	}

	sc := model.Scope{UserID: owner.ID, Email: owner.Email}
	created, err := h.taskUC.CreateFromDraft(ctx, sc, draft)
	if err != nil {
		if errors.Is(err, task.ErrDuplicateTask) {
			return h.sender.SendText(ctx, msg.From,
				"Ya tenés una tarea igual agendada en ese horario.")
		}
		h.l.Errorf(ctx, "webhook: CreateFromDraft failed for %s: %v", owner.ID, err)
		return h.sender.SendText(ctx, msg.From,
			"No pude guardar la tarea. Probá de nuevo en unos minutos.")
	}

	confirmation := fmt.Sprintf(
		"Listo! Agendé \"%s\" (%s) para el %s de %s a %s.",
		created.Title,
		created.Category.SpanishLabel(),
		created.Date.Format("02/01/2006"),
		created.StartTime,
		created.EndTime,
	)
	return h.sender.SendText(ctx, msg.From, confirmation)
}

// extractionFallbackMessage picks the user-facing reply for a failed
// extraction based on which stage failed.
func extractionFallbackMessage(err error) string {
	switch extraction.KindOf(err) {
	case extraction.KindProvider:
		return "El servicio está tardando en responder. Probá de nuevo en unos minutos."
	case extraction.KindInvalidDate:
		return "No pude entender la fecha. Decime el día con más detalle, por ejemplo \"mañana a las 10\"."
	default:
		// Unparsable or incomplete model output: re-sending the same
		// phrase tends to reproduce the failure, so ask to rephrase.
		return "No pude entender la tarea. Probá describirla de otra forma, por ejemplo \"dentista el viernes de 10 a 11\"."
	}
}
