// 命令 xdbquery：对 xdb 离线文件执行单次或批量 IP 查询
// 装配顺序：加载配置 -> 初始化日志 -> 解析标志 -> 构造 Searcher -> 执行查询/可选指标监听
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/4ba-Co/ip2region/internal/addr"
	"github.com/4ba-Co/ip2region/internal/config"
	"github.com/4ba-Co/ip2region/internal/logger"
	"github.com/4ba-Co/ip2region/internal/metrics"
	"github.com/4ba-Co/ip2region/xdb"
)

func main() {
	cfg := config.Load()
	l := logger.Setup()

	dbPath := flag.String("db", cfg.DBPath, "path to the xdb file")
	policyFlag := flag.String("policy", cfg.Policy, "cache strategy: file|vector|content")
	ipFlag := flag.String("ip", "", "single address to query; omit for batch mode over stdin")
	info := flag.Bool("info", false, "print the decoded xdb header and exit")
	metricsAddr := flag.String("metrics-addr", cfg.MetricsAddr, "optional address to serve /metrics on, e.g. :9100")
	flag.Parse()

	if *dbPath == "" {
		l.Error("db_path_missing")
		os.Exit(1)
	}

	if *info {
		h, err := xdb.ReadHeader(*dbPath)
		if err != nil {
			l.Error("read_header_error", "err", err)
			os.Exit(1)
		}
		fmt.Printf("version=%d index_policy=%d build_epoch=%d start_ptr=%d end_ptr=%d\n",
			h.Version, h.IndexPolicy, h.BuildEpoch, h.StartIndexPtr, h.EndIndexPtr)
		return
	}

	policy, err := xdb.ParsePolicy(*policyFlag)
	if err != nil {
		l.Error("policy_parse_error", "err", err)
		os.Exit(1)
	}

	s, err := xdb.New(policy, *dbPath)
	if err != nil {
		l.Error("searcher_open_error", "err", err)
		os.Exit(1)
	}
	defer s.Close()

	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			l.Info("metrics_listen", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				l.Error("metrics_listen_error", "err", err)
			}
		}()
	}

	if *ipFlag != "" {
		runQuery(l, s, *ipFlag)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		runQuery(l, s, line)
	}
	if err := scanner.Err(); err != nil {
		l.Error("stdin_read_error", "err", err)
		os.Exit(1)
	}
}

func runQuery(l *slog.Logger, s *xdb.Searcher, text string) {
	policy := s.Policy().String()
	b, err := addr.Parse(text)
	if err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(policy).Inc()
		l.Error("parse_error", "addr", text, "err", err)
		return
	}

	start := time.Now()
	region, err := s.Search(b)
	elapsed := time.Since(start)

	metrics.QueriesTotal.WithLabelValues(policy).Inc()
	metrics.QueryDurationMs.WithLabelValues(policy).Observe(float64(elapsed.Microseconds()) / 1000)
	metrics.QueryIOCount.WithLabelValues(policy).Observe(float64(s.IOCount()))

	if err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(policy).Inc()
		l.Error("search_error", "addr", text, "err", err)
		return
	}
	if region == "" {
		metrics.EmptyResultsTotal.WithLabelValues(policy).Inc()
	}
	logger.ForQuery(l, policy, s.IOCount()).Debug("query", "addr", text, "region_len", len(region))
	fmt.Println(region)
}
