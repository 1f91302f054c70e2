package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"slack-todo/internal/models"
	"slack-todo/internal/template"
)

// listLimit caps how many todos a list command renders.
const listLimit = 5

// TodoStore is the todo persistence surface the handlers need.
type TodoStore interface {
	Insert(ctx context.Context, todo *models.Todo) error
	FetchByUser(ctx context.Context, slackUser string, limit int) ([]models.Todo, error)
}

// ActionStore is the pending-action persistence surface the handlers need.
type ActionStore interface {
	Insert(ctx context.Context, action *models.Action) error
	Delete(ctx context.Context, id string) error
	FetchBySlackID(ctx context.Context, slackID string) (*models.Action, error)
}

// Notifier is the outbound Slack surface the handlers need.
type Notifier interface {
	SendMessage(ctx context.Context, text, channel string) error
	SendBlocks(ctx context.Context, channel string, blocks template.Document) error
	SendEphemeral(ctx context.Context, blocks template.Document, channel, user string) error
	SendWebhook(ctx context.Context, url string, document template.Document, ephemeral bool) error
	OpenModal(ctx context.Context, triggerID string, view template.Document) (string, error)
}

// Controller holds the shared, immutable-after-init dependencies of the
// webhook handlers. A single instance serves all requests.
type Controller struct {
	todos     TodoStore
	actions   ActionStore
	slack     Notifier
	templates *template.Store
}

func New(todos TodoStore, actions ActionStore, notifier Notifier, templates *template.Store) *Controller {
	return &Controller{
		todos:     todos,
		actions:   actions,
		slack:     notifier,
		templates: templates,
	}
}

// Health returns a fixed greeting. Used by load balancers and uptime checks.
func (ct *Controller) Health(c *gin.Context) {
	c.String(http.StatusOK, "Hello, Slack To-Do!")
}
