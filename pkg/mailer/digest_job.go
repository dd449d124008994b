package mailer

import "github.com/lifeosapp/backend/internal/domain/entity"

// DigestJob is the JSON payload put on the RabbitMQ queue for score digest
// emails. The worker renders the digest template from it.
type DigestJob struct {
	To     string          `json:"to"`
	Name   string          `json:"name"`
	Scores entity.ScoreSet `json:"scores"`
}
