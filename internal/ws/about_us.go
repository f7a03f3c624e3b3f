package ws

import "kedai/internal/models"

const EventAboutUsUpdated = "about_us.updated"

// AboutUsEvent is pushed to display pages after every successful save.
type AboutUsEvent struct {
	Type    string          `json:"type"`
	AboutUs *models.AboutUs `json:"aboutUs"`
}

// AboutUsNotifier fans record updates out to websocket subscribers.
type AboutUsNotifier struct {
	*Hub
}

func NewAboutUsNotifier() *AboutUsNotifier {
	return &AboutUsNotifier{Hub: NewHub()}
}

func (n *AboutUsNotifier) AboutUsUpdated(a *models.AboutUs) {
	n.BroadcastAll(AboutUsEvent{Type: EventAboutUsUpdated, AboutUs: a})
}
