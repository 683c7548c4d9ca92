package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"winedash/internal/analytics"
	"winedash/internal/config"
	"winedash/internal/dataset"
	"winedash/internal/server"
	"winedash/internal/util"
)

var (
	port      = flag.Int("port", 0, "服务端口 (覆盖 config.toml)")
	devMode   = flag.Bool("dev", false, "开发模式")
	exportDir = flag.String("exportDir", "", "导出目录 (覆盖配置文件)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Winedash - 葡萄酒成分可视化分析工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令行参数覆盖配置
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *exportDir != "" {
		cfg.Data.ExportDir = *exportDir
	}

	// 加载内置数据集（失败无法恢复，直接退出）
	table, err := dataset.Load()
	if err != nil {
		log.Fatalf("加载数据集失败: %v", err)
	}
	fmt.Printf("数据集已加载: %d 条记录, %d 种成分, %d 类葡萄酒\n",
		len(table.Records), len(table.Ingredients), len(table.WineTypes()))

	// 构建只读分析上下文（均值表只计算一次）
	ctx := analytics.NewContext(table)

	// 创建服务器
	srv := server.NewServer(cfg, ctx)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// 启动服务器
	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 打开浏览器
	if !cfg.Server.DevMode {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("开发模式: 请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	// 等待信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n服务已停止")
}
