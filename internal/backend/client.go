package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/restyle-next/internal/logger"
	"github.com/restyle-next/internal/models"
)

const (
	defaultTimeout  = 10 * time.Second
	authCookieName  = "token"
	maxErrorBodyLen = 4096
)

// Credential 会话凭证（后端签发的 token，空串表示匿名）
type Credential string

// Client 远端商城 API 客户端
// 只负责请求与解析，不持有任何会话状态
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Options 客户端配置
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient 创建后端客户端
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL 返回后端地址
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorPayload 后端错误响应体
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do 发起请求并把非 2xx 响应映射为类别化错误
func (c *Client) do(ctx context.Context, cred Credential, method, path string, body interface{}, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return WrapError(KindNetworkOrServer, 0, "encode request failed", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return WrapError(KindNetworkOrServer, 0, "build request failed", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if cred != "" {
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: string(cred)})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warnw("backend_request_failed", "method", method, "path", path, "error", err)
		return WrapError(KindNetworkOrServer, 0, "backend unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapFailure(method, path, resp)
	}

	if dest == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return WrapError(KindNetworkOrServer, resp.StatusCode, "decode response failed", err)
	}
	return nil
}

// mapFailure 将 HTTP 状态码映射为错误分类，文案取后端原文
func (c *Client) mapFailure(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	var payload errorPayload
	_ = json.Unmarshal(raw, &payload)
	message := strings.TrimSpace(payload.Message)
	if message == "" {
		message = strings.TrimSpace(payload.Error)
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}

	kind := KindNetworkOrServer
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindUnauthenticated
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		kind = KindValidationFailed
	}

	logger.Debugw("backend_request_rejected",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"kind", kind,
	)
	return WrapError(kind, resp.StatusCode, message, nil)
}

// ---------- 商品 ----------

// ListProducts 获取商品列表
func (c *Client) ListProducts(ctx context.Context, cred Credential) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, cred, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct 获取商品详情
func (c *Client) GetProduct(ctx context.Context, cred Credential, productID string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, cred, http.MethodGet, "/api/products/"+productID, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductInput 商品创建/更新输入
type ProductInput struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       models.Money `json:"price"`
	Category    string       `json:"category"`
	Sizes       []string     `json:"sizes,omitempty"`
	Colors      []string     `json:"colors,omitempty"`
	Discount    int          `json:"discount,omitempty"`
	Secondhand  bool         `json:"secondhand,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
}

// CreateProduct 创建商品（卖家，后端校验角色）
func (c *Client) CreateProduct(ctx context.Context, cred Credential, input ProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, cred, http.MethodPost, "/api/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct 更新商品
func (c *Client) UpdateProduct(ctx context.Context, cred Credential, productID string, input ProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, cred, http.MethodPatch, "/api/products/"+productID, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct 删除商品（卖家删除自己的商品）
func (c *Client) DeleteProduct(ctx context.Context, cred Credential, productID string) error {
	return c.do(ctx, cred, http.MethodDelete, "/api/products/"+productID, nil, nil)
}

// AdminDeleteProduct 管理员删除任意商品
func (c *Client) AdminDeleteProduct(ctx context.Context, cred Credential, productID string) error {
	return c.do(ctx, cred, http.MethodDelete, "/api/products/admin/"+productID, nil, nil)
}

// ---------- 商品互动 ----------

// commentListPayload 评论接口返回权威评论列表
type commentListPayload struct {
	Comments []models.Comment `json:"comments"`
}

// AddComment 发表评论，返回服务端权威评论列表
func (c *Client) AddComment(ctx context.Context, cred Credential, productID, text string) ([]models.Comment, error) {
	var payload commentListPayload
	body := map[string]string{"text": text}
	if err := c.do(ctx, cred, http.MethodPost, "/api/product-actions/"+productID+"/comment", body, &payload); err != nil {
		return nil, err
	}
	return payload.Comments, nil
}

// DeleteComment 删除评论，返回服务端权威评论列表
func (c *Client) DeleteComment(ctx context.Context, cred Credential, productID, commentID string) ([]models.Comment, error) {
	var payload commentListPayload
	if err := c.do(ctx, cred, http.MethodDelete, "/api/product-actions/"+productID+"/comment/"+commentID, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Comments, nil
}

// favoritePayload 收藏接口返回
type favoritePayload struct {
	Favorited bool `json:"favorited"`
}

// ToggleFavorite 切换收藏，返回服务端确认后的收藏状态
func (c *Client) ToggleFavorite(ctx context.Context, cred Credential, productID string) (bool, error) {
	var payload favoritePayload
	if err := c.do(ctx, cred, http.MethodPost, "/api/product-actions/"+productID+"/favorite", nil, &payload); err != nil {
		return false, err
	}
	return payload.Favorited, nil
}

// favoriteListPayload 收藏列表接口返回
type favoriteListPayload struct {
	Favorites []string `json:"favorites"`
}

// ListFavorites 获取当前身份收藏的商品 id 集合
func (c *Client) ListFavorites(ctx context.Context, cred Credential) ([]string, error) {
	var payload favoriteListPayload
	if err := c.do(ctx, cred, http.MethodGet, "/api/product-actions/favorites", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Favorites, nil
}

// likePayload 点赞接口返回
type likePayload struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// ToggleLike 切换点赞，返回服务端权威的计数与状态
func (c *Client) ToggleLike(ctx context.Context, cred Credential, productID string) (models.LikeState, error) {
	var payload likePayload
	if err := c.do(ctx, cred, http.MethodPost, "/api/product-actions/"+productID+"/like", nil, &payload); err != nil {
		return models.LikeState{}, err
	}
	return models.LikeState{Count: payload.Likes, Liked: payload.Liked}, nil
}

// ---------- 账号 ----------

// authPayload 登录/资料接口返回
type authPayload struct {
	User    *models.Identity `json:"user"`
	Token   string           `json:"token"`
	Message string           `json:"message"`
}

// LoginResult 登录结果
type LoginResult struct {
	Identity *models.Identity
	Token    Credential
}

// Login 账号登录
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var payload authPayload
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, "", http.MethodPost, "/api/auth/login", body, &payload); err != nil {
		return nil, err
	}
	return &LoginResult{Identity: payload.User, Token: Credential(payload.Token)}, nil
}

// Logout 账号登出（尽力而为，本地会话随后销毁）
func (c *Client) Logout(ctx context.Context, cred Credential) error {
	return c.do(ctx, cred, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Me 获取当前身份
func (c *Client) Me(ctx context.Context, cred Credential) (*models.Identity, error) {
	var payload struct {
		User *models.Identity `json:"user"`
	}
	if err := c.do(ctx, cred, http.MethodGet, "/users/me", nil, &payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

// ProfileUpdateInput 资料更新输入（只带有变更的字段）
type ProfileUpdateInput struct {
	Username        string `json:"username,omitempty"`
	ProfilePic      string `json:"profilePic,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// ProfileUpdateResult 资料更新结果
type ProfileUpdateResult struct {
	Identity *models.Identity
	Token    Credential
	Message  string
}

// UpdateProfile 更新资料，后端可能轮换 token
func (c *Client) UpdateProfile(ctx context.Context, cred Credential, input ProfileUpdateInput) (*ProfileUpdateResult, error) {
	var payload authPayload
	if err := c.do(ctx, cred, http.MethodPatch, "/users/update", input, &payload); err != nil {
		return nil, err
	}
	return &ProfileUpdateResult{
		Identity: payload.User,
		Token:    Credential(payload.Token),
		Message:  payload.Message,
	}, nil
}

// DeleteAccount 注销账号
func (c *Client) DeleteAccount(ctx context.Context, cred Credential) error {
	return c.do(ctx, cred, http.MethodDelete, "/users/delete", nil, nil)
}

// ---------- 管理端 ----------

// AdminStats 获取聚合统计
func (c *Client) AdminStats(ctx context.Context, cred Credential) (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := c.do(ctx, cred, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminListUsers 获取用户列表
func (c *Client) AdminListUsers(ctx context.Context, cred Credential) ([]models.Identity, error) {
	var users []models.Identity
	if err := c.do(ctx, cred, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminDeleteUser 删除用户
func (c *Client) AdminDeleteUser(ctx context.Context, cred Credential, userID string) error {
	return c.do(ctx, cred, http.MethodDelete, "/admin/users/"+userID, nil, nil)
}

// AdminChangeUserRole 调整用户角色，返回更新后的用户
func (c *Client) AdminChangeUserRole(ctx context.Context, cred Credential, userID, role string) (*models.Identity, error) {
	var user models.Identity
	body := map[string]string{"role": role}
	if err := c.do(ctx, cred, http.MethodPatch, "/admin/users/"+userID+"/role", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ---------- 结算 ----------

// CheckoutItem 结算条目
type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// checkoutPayload 结算会话接口返回
type checkoutPayload struct {
	URL string `json:"url"`
}

// CreateCheckoutSession 创建支付会话，返回跳转地址
func (c *Client) CreateCheckoutSession(ctx context.Context, cred Credential, items []CheckoutItem) (string, error) {
	var payload checkoutPayload
	body := map[string]interface{}{"items": items}
	if err := c.do(ctx, cred, http.MethodPost, "/api/checkout/create-checkout-session", body, &payload); err != nil {
		return "", err
	}
	return payload.URL, nil
}
