package config

// Jwt 令牌配置，过期时间单位为秒
type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	AccessExpire  int    `json:"access_expire" yaml:"access_expire"`
	RefreshExpire int    `json:"refresh_expire" yaml:"refresh_expire"`
}
