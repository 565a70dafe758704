package contract

import (
	"context"
	"encoding/json"
)

// AddonSettingRepository stores the slug-scoped settings bag. Values are raw
// JSON so each handler can keep whatever shape it needs.
type AddonSettingRepository interface {
	GetAll(ctx context.Context, slug string) (map[string]json.RawMessage, error)
	Put(ctx context.Context, slug, key string, value json.RawMessage) error
}
