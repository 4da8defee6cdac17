package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/afumu/gramtrace/store"
	"github.com/afumu/gramtrace/web"
	"github.com/spf13/viper"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// --- 加载配置 ---
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// 文件不存在，尝试创建默认配置
			if err := viper.SafeWriteConfig(); err != nil {
				log.Printf("无法创建默认 .env 文件: %v", err)
			} else {
				log.Println("已自动创建并初始化 .env 配置文件")
			}
		} else {
			log.Printf("注意: 读取 .env 文件出错: %v. 将使用默认值或环境变量。", err)
		}
	}

	// --- 配置 ---
	// workDir 是采集管道写入数据文件的目录。
	workDir := viper.GetString("WORK_DIR")
	if workDir == "" {
		workDir = "data"
	}

	// 端口配置：优先使用 LISTEN_ADDR，其次使用 PORT，最后默认 127.0.0.1:5300
	listenAddr := viper.GetString("LISTEN_ADDR")
	port := viper.GetString("PORT")
	if listenAddr == "" {
		if port != "" {
			listenAddr = "127.0.0.1:" + port
		} else {
			listenAddr = "127.0.0.1:5300"
		}
	}

	cacheEnabled := true
	if viper.IsSet("CACHE_ENABLED") {
		cacheEnabled = viper.GetBool("CACHE_ENABLED")
	}
	cacheTTL := viper.GetInt("CACHE_TTL_MINUTES")
	if cacheTTL <= 0 {
		cacheTTL = 5
	}

	log.Printf("使用工作目录: %s", workDir)

	// 确保工作目录存在
	if err := os.MkdirAll(workDir, 0755); err != nil {
		log.Fatalf("创建工作目录失败: %v", err)
	}

	// --- 初始化 Store ---
	newStore, err := store.NewStore(workDir)
	if err != nil {
		log.Fatalf("初始化 store 失败: %v", err)
	}
	defer newStore.Close()
	log.Println("Store 初始化成功。")

	// --- 初始化 Web 服务 ---
	webConf := web.Config{
		ListenAddr:      listenAddr,
		DataDir:         workDir,
		CacheEnabled:    cacheEnabled,
		CacheTTLMinutes: cacheTTL,
	}
	webService := web.NewService(newStore, &webConf)

	// --- 启动服务 ---
	if err := webService.Start(); err != nil {
		log.Fatalf("启动 web 服务失败: %v", err)
	}

	baseURL := listenAddr
	if len(baseURL) > 0 && baseURL[0] == ':' {
		baseURL = "127.0.0.1" + baseURL
	}
	log.Printf("服务已启动，请访问: http://%s", baseURL)

	// --- 等待中断信号以实现优雅关闭 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("接收到关闭信号，正在关闭服务...")

	// --- 关闭服务 ---
	if err := webService.Stop(); err != nil {
		log.Fatalf("关闭 web 服务时出错: %v", err)
	}
	log.Println("服务已成功关闭。")
}
