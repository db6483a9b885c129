package models

// Identity 当前登录身份（角色由服务端分配，客户端只读）
type Identity struct {
	ID         string `json:"_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	ProfilePic string `json:"profilePic"`
}

// AdminStats 管理端聚合统计
type AdminStats struct {
	TotalUsers int `json:"totalUsers"`
	Buyers     int `json:"buyers"`
	Sellers    int `json:"sellers"`
	Admins     int `json:"admins"`
}
