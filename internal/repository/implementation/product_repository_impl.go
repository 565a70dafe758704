package implementation

import (
	"context"
	"errors"

	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/mapper"
	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var m model.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var models []*model.Product
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock_quantity", quantity).Error
}

func (r *ProductRepositoryImpl) GetMeta(ctx context.Context, id uuid.UUID, key string) (int64, error) {
	var m model.ProductMeta
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND meta_key = ?", id, key).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return m.MetaValue, nil
}

func (r *ProductRepositoryImpl) IncrementMeta(ctx context.Context, id uuid.UUID, key string, delta int64) error {
	m := &model.ProductMeta{
		ProductId: id,
		MetaKey:   key,
		MetaValue: delta,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "meta_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"meta_value": gorm.Expr("meta_value + ?", delta)}),
	}).Create(m).Error
}
