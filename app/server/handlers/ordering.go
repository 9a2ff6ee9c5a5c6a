package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gilab-api/app/server/models"

	"gorm.io/gorm"
)

// 可手动排序的实体：display_order 只在各自的分组内（同一年份 / 同一父节点）有意义
type orderedEntity interface {
	models.Publication | models.ResearchArea
}

// moveOrdered 在同组内与最近的一个兄弟交换 display_order ，两次写入放在同一个事务里。
// 已经在最顶 / 最底时返回 moved = false ，不算错误。
// 同组出现相同 display_order 时，按 created_at 、 id 作为次级排序，保证结果可复现。
// 方法不能有类型形参，所以这个不能用 (a *App)
func moveOrdered[M orderedEntity](
	ctx context.Context,
	db *gorm.DB,
	id string,
	up bool,
	groupScope func(tx *gorm.DB, current *M) *gorm.DB,
	orderOf func(*M) int,
) (moved bool, err error, statusCode int) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 定位当前实体
		var current M
		if err := tx.First(&current, "id = ?", id).Error; err != nil {
			return fmt.Errorf("find current: %w", err)
		}

		// 在同组内找最近的交换对象
		query := groupScope(tx.Model(new(M)), &current)
		if up {
			query = query.
				Where("display_order < ?", orderOf(&current)).
				Order("display_order DESC").Order("created_at DESC").Order("id DESC")
		} else {
			query = query.
				Where("display_order > ?", orderOf(&current)).
				Order("display_order ASC").Order("created_at ASC").Order("id ASC")
		}

		var sibling M
		if err := query.First(&sibling).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 已经到顶 / 到底
				return nil
			}
			return fmt.Errorf("find sibling: %w", err)
		}

		// 交换排序值
		currentOrder, siblingOrder := orderOf(&current), orderOf(&sibling)
		if err := tx.Model(&current).Update("display_order", siblingOrder).Error; err != nil {
			return fmt.Errorf("update current: %w", err)
		}
		if err := tx.Model(&sibling).Update("display_order", currentOrder).Error; err != nil {
			return fmt.Errorf("update sibling: %w", err)
		}

		moved = true
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err, http.StatusNotFound
		}
		return false, err, http.StatusInternalServerError
	}

	return moved, nil, http.StatusOK
}
