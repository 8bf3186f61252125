package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type entityModel struct {
	GUID          string         `gorm:"column:guid;primaryKey;size:36"`
	TypeName      string         `gorm:"column:type_name;size:128;index"`
	TypeGUID      string         `gorm:"column:type_guid;size:36"`
	QualifiedName string         `gorm:"column:qualified_name;size:512;index"`
	LiveKey       *string        `gorm:"column:live_key;size:512;uniqueIndex"`
	Properties    Properties     `gorm:"column:properties;type:text;serializer:json"`
	Version       int64          `gorm:"column:version"`
	CreatedBy     string         `gorm:"column:created_by;size:128"`
	UpdatedBy     string         `gorm:"column:updated_by;size:128"`
	SourceID      string         `gorm:"column:source_id;size:36"`
	SourceName    string         `gorm:"column:source_name;size:255"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (entityModel) TableName() string { return "graph_entities" }

func (m *entityModel) toRef() EntityRef {
	props := m.Properties
	if props == nil {
		props = Properties{}
	}
	return EntityRef{
		GUID:          m.GUID,
		TypeName:      m.TypeName,
		TypeGUID:      m.TypeGUID,
		QualifiedName: m.QualifiedName,
		Properties:    props,
		Version:       m.Version,
		CreatedBy:     m.CreatedBy,
		UpdatedBy:     m.UpdatedBy,
		SourceName:    m.SourceName,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type relationshipModel struct {
	GUID       string         `gorm:"column:guid;primaryKey;size:36"`
	TypeName   string         `gorm:"column:type_name;size:128;index"`
	End1GUID   string         `gorm:"column:end1_guid;size:36;index"`
	End2GUID   string         `gorm:"column:end2_guid;size:36;index"`
	Properties Properties     `gorm:"column:properties;type:text;serializer:json"`
	CreatedBy  string         `gorm:"column:created_by;size:128"`
	SourceID   string         `gorm:"column:source_id;size:36"`
	SourceName string         `gorm:"column:source_name;size:255"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (relationshipModel) TableName() string { return "graph_relationships" }

func (m *relationshipModel) toRef() RelationshipRef {
	return RelationshipRef{
		GUID:       m.GUID,
		TypeName:   m.TypeName,
		End1GUID:   m.End1GUID,
		End2GUID:   m.End2GUID,
		SourceName: m.SourceName,
		CreatedAt:  m.CreatedAt,
	}
}

// Table names and the columns the store relies on, used by the integrity check.
var (
	EntityTable         = entityModel{}.TableName()
	RelationshipTable   = relationshipModel{}.TableName()
	EntityColumns       = []string{"guid", "type_name", "type_guid", "qualified_name", "live_key", "properties", "version", "created_by", "updated_by", "source_id", "source_name", "created_at", "updated_at", "deleted_at"}
	RelationshipColumns = []string{"guid", "type_name", "end1_guid", "end2_guid", "properties", "created_by", "source_id", "source_name", "created_at", "updated_at", "deleted_at"}
)

// GormStore is a Store backed by a relational database.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over db. Call Migrate before first use.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the store tables.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&entityModel{}, &relationshipModel{}); err != nil {
		return fmt.Errorf("failed to migrate graph tables: %w", err)
	}
	return nil
}

// typeScope restricts a query to typeName and its subtypes. Referenceable matches all.
func typeScope(typeName string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if typeName == "" || typeName == TypeReferenceable {
			return db
		}
		return db.Where("type_name IN ?", SubtypesOf(typeName))
	}
}

func (s *GormStore) FindByQualifiedName(ctx context.Context, typeName, qualifiedName string) (*EntityRef, error) {
	var m entityModel
	err := s.db.WithContext(ctx).
		Scopes(typeScope(typeName)).
		Where("qualified_name = ?", qualifiedName).
		Order("created_at").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s %s: %w", typeName, qualifiedName, err)
	}
	ref := m.toRef()
	return &ref, nil
}

func (s *GormStore) GetEntity(ctx context.Context, guid string) (*EntityRef, error) {
	m, err := getLive(s.db.WithContext(ctx), guid)
	if err != nil {
		return nil, err
	}
	ref := m.toRef()
	return &ref, nil
}

func getLive(tx *gorm.DB, guid string) (*entityModel, error) {
	var m entityModel
	err := tx.Where("guid = ?", guid).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, guid)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entity %s: %w", guid, err)
	}
	return &m, nil
}

func newEntityModel(userID string, e NewEntity, prov Provenance) (*entityModel, error) {
	if e.TypeName == "" {
		return nil, fmt.Errorf("entity type name is empty")
	}
	typeGUID := e.TypeGUID
	if typeGUID == "" {
		typeGUID = TypeGUID(e.TypeName)
	}
	m := &entityModel{
		GUID:          uuid.NewString(),
		TypeName:      e.TypeName,
		TypeGUID:      typeGUID,
		QualifiedName: e.QualifiedName,
		Properties:    e.Properties,
		Version:       1,
		CreatedBy:     userID,
		UpdatedBy:     userID,
		SourceID:      prov.SourceID,
		SourceName:    prov.SourceName,
	}
	if e.QualifiedName != "" {
		key := e.QualifiedName
		m.LiveKey = &key
	}
	return m, nil
}

func insertEntity(tx *gorm.DB, m *entityModel) error {
	err := tx.Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", ErrDuplicateQualifiedName, m.QualifiedName)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s %s: %w", m.TypeName, m.QualifiedName, err)
	}
	return nil
}

func (s *GormStore) Create(ctx context.Context, userID string, entity NewEntity, prov Provenance) (string, error) {
	m, err := newEntityModel(userID, entity, prov)
	if err != nil {
		return "", err
	}
	if err := insertEntity(s.db.WithContext(ctx), m); err != nil {
		return "", err
	}
	return m.GUID, nil
}

func (s *GormStore) CreateNested(ctx context.Context, userID string, entity NewEntity, parentGUID, relationshipType string, prov Provenance) (string, error) {
	m, err := newEntityModel(userID, entity, prov)
	if err != nil {
		return "", err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getLive(tx, parentGUID); err != nil {
			return err
		}
		if err := insertEntity(tx, m); err != nil {
			return err
		}
		rel := &relationshipModel{
			GUID:       uuid.NewString(),
			TypeName:   relationshipType,
			End1GUID:   parentGUID,
			End2GUID:   m.GUID,
			CreatedBy:  userID,
			SourceID:   prov.SourceID,
			SourceName: prov.SourceName,
		}
		if err := tx.Create(rel).Error; err != nil {
			return fmt.Errorf("failed to create %s relationship: %w", relationshipType, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return m.GUID, nil
}

func (s *GormStore) Update(ctx context.Context, userID, guid string, props Properties, prov Provenance) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := getLive(tx, guid)
		if err != nil {
			return err
		}
		m.Properties = props
		m.Version++
		m.UpdatedBy = userID
		m.SourceID = prov.SourceID
		m.SourceName = prov.SourceName
		if err := tx.Save(m).Error; err != nil {
			return fmt.Errorf("failed to update entity %s: %w", guid, err)
		}
		return nil
	})
}

func (s *GormStore) Delete(ctx context.Context, userID, guid string, semantic DeleteSemantic, prov Provenance) error {
	switch semantic {
	case DeleteSoft:
		return s.softDelete(ctx, userID, guid, prov)
	case DeletePurge:
		return s.purge(ctx, guid)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedSemantic, semantic)
	}
}

func (s *GormStore) softDelete(ctx context.Context, userID, guid string, prov Provenance) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := getLive(tx, guid)
		if errors.Is(err, ErrEntityNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		// Free the qualified name so it can be reused
		err = tx.Model(m).Updates(map[string]any{
			"live_key":    nil,
			"updated_by":  userID,
			"source_id":   prov.SourceID,
			"source_name": prov.SourceName,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to release qualified name of %s: %w", guid, err)
		}
		if err := tx.Delete(m).Error; err != nil {
			return fmt.Errorf("failed to delete entity %s: %w", guid, err)
		}
		if err := tx.Where("end1_guid = ? OR end2_guid = ?", guid, guid).Delete(&relationshipModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete relationships of %s: %w", guid, err)
		}
		return nil
	})
}

func (s *GormStore) purge(ctx context.Context, guid string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("guid = ?", guid).Delete(&entityModel{}).Error; err != nil {
			return fmt.Errorf("failed to purge entity %s: %w", guid, err)
		}
		if err := tx.Unscoped().Where("end1_guid = ? OR end2_guid = ?", guid, guid).Delete(&relationshipModel{}).Error; err != nil {
			return fmt.Errorf("failed to purge relationships of %s: %w", guid, err)
		}
		return nil
	})
}

func (s *GormStore) GetRelatedEntities(ctx context.Context, guid, relationshipType, fromType string) ([]EntityRef, error) {
	db := s.db.WithContext(ctx)

	start, err := getLive(db, guid)
	if errors.Is(err, ErrEntityNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fromType != "" && !IsA(start.TypeName, fromType) {
		return nil, nil
	}

	var rels []relationshipModel
	err = db.Where("type_name = ? AND (end1_guid = ? OR end2_guid = ?)", relationshipType, guid, guid).
		Find(&rels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s relationships of %s: %w", relationshipType, guid, err)
	}
	if len(rels) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rels))
	for _, r := range rels {
		if r.End1GUID == guid {
			ids = append(ids, r.End2GUID)
		} else {
			ids = append(ids, r.End1GUID)
		}
	}

	var models []entityModel
	if err := db.Where("guid IN ?", ids).Order("created_at").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load entities related to %s: %w", guid, err)
	}

	out := make([]EntityRef, 0, len(models))
	for i := range models {
		out = append(out, models[i].toRef())
	}
	return out, nil
}

func (s *GormStore) CreateRelationship(ctx context.Context, userID, relationshipType, end1GUID, end2GUID string, prov Provenance) (string, error) {
	var guid string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, end := range []string{end1GUID, end2GUID} {
			if _, err := getLive(tx, end); err != nil {
				return err
			}
		}

		var existing relationshipModel
		err := tx.Where("type_name = ? AND end1_guid = ? AND end2_guid = ?", relationshipType, end1GUID, end2GUID).
			First(&existing).Error
		if err == nil {
			guid = existing.GUID
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up %s relationship: %w", relationshipType, err)
		}

		rel := &relationshipModel{
			GUID:       uuid.NewString(),
			TypeName:   relationshipType,
			End1GUID:   end1GUID,
			End2GUID:   end2GUID,
			CreatedBy:  userID,
			SourceID:   prov.SourceID,
			SourceName: prov.SourceName,
		}
		if err := tx.Create(rel).Error; err != nil {
			return fmt.Errorf("failed to create %s relationship: %w", relationshipType, err)
		}
		guid = rel.GUID
		return nil
	})
	if err != nil {
		return "", err
	}
	return guid, nil
}

func (s *GormStore) DiffProperties(existing, desired Properties) bool {
	return HasDifference(existing, desired)
}

// Relationships returns the live relationships of relationshipType touching guid.
func (s *GormStore) Relationships(ctx context.Context, guid, relationshipType string) ([]RelationshipRef, error) {
	var rels []relationshipModel
	err := s.db.WithContext(ctx).
		Where("type_name = ? AND (end1_guid = ? OR end2_guid = ?)", relationshipType, guid, guid).
		Order("created_at").
		Find(&rels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s relationships of %s: %w", relationshipType, guid, err)
	}
	out := make([]RelationshipRef, 0, len(rels))
	for i := range rels {
		out = append(out, rels[i].toRef())
	}
	return out, nil
}

// Orphans returns live entities of typeName that are not the end2 of any live
// relationshipType, such as attributes whose owning schema type is gone.
func (s *GormStore) Orphans(ctx context.Context, typeName, relationshipType string) ([]EntityRef, error) {
	owned := s.db.Model(&relationshipModel{}).Select("end2_guid").Where("type_name = ?", relationshipType)

	var models []entityModel
	err := s.db.WithContext(ctx).
		Scopes(typeScope(typeName)).
		Where("guid NOT IN (?)", owned).
		Order("qualified_name").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned %s entities: %w", typeName, err)
	}
	out := make([]EntityRef, 0, len(models))
	for i := range models {
		out = append(out, models[i].toRef())
	}
	return out, nil
}
