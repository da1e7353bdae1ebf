package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务器和搜索的运行参数，来自 YAML 文件，命令行旗标可覆盖
type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	WebDir       string `yaml:"web_dir"`
	WebMobileDir string `yaml:"web_mobile_dir"`

	SearchTimeSec int `yaml:"search_time_sec"`
	MaxDepth      int `yaml:"max_depth"`
	TTCapacity    int `yaml:"tt_capacity"`
}

func Default() Config {
	return Config{
		ListenAddr:    ":2888",
		WebDir:        "./web",
		WebMobileDir:  "./web_mobile",
		SearchTimeSec: 5,
		MaxDepth:      0, // 0 = 引擎默认上限
		TTCapacity:    0, // 0 = 引擎默认容量
	}
}

// Load 读取 YAML 配置；path 为空时直接给默认值
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) SearchTime() time.Duration {
	if c.SearchTimeSec <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.SearchTimeSec) * time.Second
}
