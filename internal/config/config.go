// 包 config：从环境变量与 .env 读取 cmd/xdbquery 的运行配置
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config：CLI 运行所需的最小配置集
type Config struct {
	DBPath      string // XDB_PATH
	Policy      string // XDB_POLICY：file|vector|content
	LogLevel    string // LOG_LEVEL
	MetricsAddr string // METRICS_ADDR，为空表示不启动指标监听
}

// Load：加载 .env（如存在）并读取环境变量，填充缺省值
func Load() Config {
	_ = godotenv.Load(".env")
	return Config{
		DBPath:      os.Getenv("XDB_PATH"),
		Policy:      getenvDefault("XDB_POLICY", "vector"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
