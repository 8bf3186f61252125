package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var (
	// ErrUnknownSource is returned when resolving a name that was never registered.
	ErrUnknownSource = errors.New("external source not registered")
	// ErrEmptyName is returned when registering a source without a name.
	ErrEmptyName = errors.New("external source name is empty")
)

// Source is a registered external source.
type Source struct {
	GUID        string    `gorm:"column:guid;primaryKey;size:36" json:"guid"`
	Name        string    `gorm:"column:name;size:255;uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;size:1024" json:"description,omitempty"`
	CreatedBy   string    `gorm:"column:created_by;size:128" json:"createdBy"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Source) TableName() string { return "external_sources" }

// Table and Columns describe the registry schema to integrity checks.
var (
	Table   = Source{}.TableName()
	Columns = []string{"guid", "name", "description", "created_by", "created_at", "updated_at"}
)

// Registry records the upstream systems allowed to tag writes.
type Registry struct {
	db    *gorm.DB
	group singleflight.Group
}

// New creates a registry over db.
func New(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// Migrate creates the external_sources table.
func (r *Registry) Migrate() error {
	if err := r.db.AutoMigrate(&Source{}); err != nil {
		return fmt.Errorf("failed to migrate external sources: %w", err)
	}
	return nil
}

// Register adds a source, returning the existing one when name is already registered.
func (r *Registry) Register(ctx context.Context, userID, name, description string) (*Source, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	var src Source
	err := r.db.WithContext(ctx).
		Where(Source{Name: name}).
		Attrs(Source{GUID: uuid.NewString(), Description: description, CreatedBy: userID}).
		FirstOrCreate(&src).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race with a concurrent Register
		return r.lookup(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register external source %s: %w", name, err)
	}
	return &src, nil
}

// Resolve returns the GUID of a registered source. An empty name means the write is
// local and resolves to an empty id.
func (r *Registry) Resolve(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", nil
	}

	// Collapse concurrent lookups of the same name into one query
	v, err, _ := r.group.Do(name, func() (any, error) {
		return r.lookup(ctx, name)
	})
	if err != nil {
		return "", err
	}
	return v.(*Source).GUID, nil
}

// List returns every registered source ordered by name.
func (r *Registry) List(ctx context.Context) ([]Source, error) {
	var out []Source
	if err := r.db.WithContext(ctx).Order("name").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list external sources: %w", err)
	}
	return out, nil
}

func (r *Registry) lookup(ctx context.Context, name string) (*Source, error) {
	var src Source
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&src).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve external source %s: %w", name, err)
	}
	return &src, nil
}
