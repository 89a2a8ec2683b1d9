package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dailydone/marketplace-api/internal/core/domain"
)

const auditCollection = "auth_events"

// MongoAuditRepository persists auth events to the audit trail collection.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	UserID    string `bson:"user_id,omitempty"`
	Email     string `bson:"email,omitempty"`
	Role      string `bson:"role,omitempty"`
	Action    string `bson:"action"`
	RemoteIP  string `bson:"remote_ip,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) InsertEvent(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		UserID:    event.UserID,
		Email:     event.Email,
		Role:      event.Role,
		Action:    event.Action,
		RemoteIP:  event.RemoteIP,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
