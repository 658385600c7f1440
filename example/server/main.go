package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/bhoriuchi/gql"
	"github.com/bhoriuchi/gql/gqlclient"
	"github.com/bhoriuchi/gql/logger"
	"github.com/bhoriuchi/gql/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var conf = viper.New()

var rootCmd = &cobra.Command{
	Use:   "gql-example",
	Short: "Example graphql server",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the example schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var queryCmd = &cobra.Command{
	Use:   "query [source]",
	Short: "Send a query to a running server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return query(cmd.Context(), args[0])
	},
}

func init() {
	serveCmd.Flags().String("addr", ":3000", "Address to listen on")
	serveCmd.Flags().String("endpoint", "/graphql", "Path of the graphql endpoint")
	serveCmd.Flags().Bool("playground", true, "Serve the GraphiQL explorer on GET requests")
	serveCmd.Flags().Bool("pretty", false, "Indent JSON responses")
	serveCmd.Flags().StringSlice("header", nil, "Custom response header as key=value, may be repeated")

	queryCmd.Flags().String("url", "http://localhost:3000/graphql", "Server url")
	queryCmd.Flags().Bool("mutation", false, "Send the source as a mutation")
	queryCmd.Flags().String("variables", "", "Variables as a JSON object")
	queryCmd.Flags().String("user", "", "Value of the X-User header")

	rootCmd.PersistentFlags().String("log-level", "info", "One of error, warn, info, debug, trace")

	for _, cmd := range []*cobra.Command{serveCmd, queryCmd} {
		rootCmd.AddCommand(cmd)
		if err := conf.BindPFlags(cmd.Flags()); err != nil {
			panic(err)
		}
	}
	if err := conf.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	conf.SetEnvPrefix("GQL")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
}

func newLogFunc() (logger.LogFunc, func(), error) {
	level, err := logger.ParseLevel(conf.GetString("log-level"))
	if err != nil {
		return nil, nil, err
	}

	cfg := zap.NewProductionConfig()
	if level >= logger.DebugLevel {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	zl, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build zap logger, using plain output: %s\n", err)
		return logger.NewSimpleLogFunc(level), func() {}, nil
	}

	return logger.NewZapLogFunc(zl), func() { _ = zl.Sync() }, nil
}

func serve() error {
	logFunc, sync, err := newLogFunc()
	if err != nil {
		return err
	}
	defer sync()
	log := logger.NewLogWrapper(logFunc, nil)

	log.Infof("Building schema...")
	schema, err := buildSchema()
	if err != nil {
		return errors.Wrap(err, "failed to build schema")
	}

	collector := metrics.New("gql_example")
	prometheus.MustRegister(collector)

	endpoint := conf.GetString("endpoint")
	opts := []gql.Option{
		gql.WithLogFunc(logFunc),
		gql.WithContextFunc(viewerContext),
		gql.WithMetrics(collector),
	}
	if conf.GetBool("playground") {
		opts = append(opts, gql.WithPlayground(endpoint))
	}
	if conf.GetBool("pretty") {
		opts = append(opts, gql.WithPretty())
	}
	for _, h := range conf.GetStringSlice("header") {
		kv := strings.SplitN(h, "=", 2)
		if len(kv) != 2 {
			return errors.Errorf("invalid header %q, expected key=value", h)
		}
		opts = append(opts, gql.WithHeader(kv[0], kv[1]))
	}

	mux := http.NewServeMux()
	mux.Handle(endpoint, gql.New(schema, opts...))
	mux.Handle("/metrics", promhttp.Handler())

	addr := conf.GetString("addr")
	log.Infof("Listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func query(ctx context.Context, source string) error {
	opts := &gqlclient.Options{URL: conf.GetString("url")}
	if user := conf.GetString("user"); user != "" {
		opts.Before = append(opts.Before, func(req *http.Request) error {
			req.Header.Set("X-User", user)
			return nil
		})
	}

	client, err := gqlclient.NewClient(opts)
	if err != nil {
		return err
	}

	params := gql.NewQuery(source)
	if conf.GetBool("mutation") {
		params = gql.NewMutation(source)
	}
	if vars := conf.GetString("variables"); vars != "" {
		if err := json.Unmarshal([]byte(vars), &params.Variables); err != nil {
			return errors.Wrap(err, "invalid variables")
		}
	}

	rsp, err := client.Do(ctx, params)
	if rsp != nil {
		fmt.Println(string(rsp.RawResult()))
	}
	return err
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
