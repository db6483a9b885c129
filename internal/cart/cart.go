package cart

import (
	"errors"
	"sort"
	"sync"

	"github.com/restyle-next/internal/models"

	"github.com/shopspring/decimal"
)

// ErrQuantityInvalid 数量非法（≤0 的新增请求直接拒绝）
var ErrQuantityInvalid = errors.New("cart quantity must be positive")

// Line 购物车条目，数量恒 ≥ 1
type Line struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Catalog 商品快照目录，按商品 id 索引
type Catalog map[string]models.Product

// NewCatalog 从商品列表构建目录
func NewCatalog(products []models.Product) Catalog {
	catalog := make(Catalog, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}
	return catalog
}

// Store 会话内购物车
// 只维护 商品id → 数量 映射，本身不发起任何网络请求；
// 结算与持久化由独立协作方负责
type Store struct {
	mu    sync.Mutex
	lines map[string]int
}

// NewStore 创建空购物车
func NewStore() *Store {
	return &Store{lines: make(map[string]int)}
}

// Add 新增条目或累加已有条目数量
// quantity ≤ 0 视为前置条件失败，购物车保持不变
func (s *Store) Add(productID string, quantity int) error {
	if productID == "" || quantity <= 0 {
		return ErrQuantityInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[productID] += quantity
	return nil
}

// Update 将条目数量设为指定值
// 低于 1 的值一律收敛到 1（步进器与手输数量框统一口径）；
// 条目不存在时不新建
func (s *Store) Update(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lines[productID]; !ok {
		return
	}
	s.lines[productID] = quantity
}

// Remove 删除条目，不存在时为空操作
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lines, productID)
}

// Clear 无条件清空
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[string]int)
}

// Contains 判断商品是否在购物车内
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lines[productID]
	return ok
}

// Quantity 返回条目数量，不存在返回 0
func (s *Store) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines[productID]
}

// Len 返回条目数
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Lines 返回条目快照（按商品 id 排序，保证渲染稳定）
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]Line, 0, len(s.lines))
	for productID, quantity := range s.lines {
		lines = append(lines, Line{ProductID: productID, Quantity: quantity})
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ProductID < lines[j].ProductID
	})
	return lines
}

// Total 按目录可解析的条目汇总 单价×数量
// 目录中找不到的条目直接跳过，不视为错误
func (s *Store) Total(catalog Catalog) models.Money {
	total := decimal.Zero
	for _, line := range s.Lines() {
		product, ok := catalog[line.ProductID]
		if !ok {
			continue
		}
		total = total.Add(product.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}

// Restore 用快照重建购物车内容（非法条目丢弃）
func (s *Store) Restore(lines []Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[string]int, len(lines))
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity < 1 {
			continue
		}
		s.lines[line.ProductID] = line.Quantity
	}
}
