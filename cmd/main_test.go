package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		movieAPIKey, streamingAPIKey,
		tmdbURL, tmdbImageURL, streamingURL, streamingCountry, upstreamTimeout,
		secretKey, sessionTTL,
		dbURI, dbMaxOpen, dbMaxIdle,
		redisAddr, redisPassword, redisDB,
		kafkaBrokers, kafkaTopic,
		adminEmails, ratePerSecond, rateBurst,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appHost != "localhost" || appPort != "8080" || logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", appHost, appPort, logLevel)
	}

	if movieAPIKey != "" || streamingAPIKey != "" ||
		tmdbURL != "https://api.themoviedb.org/3" ||
		tmdbImageURL != "https://image.tmdb.org/t/p/w500" ||
		streamingURL != "https://streaming-availability.p.rapidapi.com" ||
		streamingCountry != "us" || upstreamTimeout != 10 {
		t.Errorf("unexpected upstream config")
	}

	if secretKey != "dev-secret-key" || sessionTTL != 86400 {
		t.Errorf("unexpected session config")
	}

	if dbURI != "sqlite:///movies_personal_project.db" || dbMaxOpen != 16 || dbMaxIdle != 8 {
		t.Errorf("unexpected database config")
	}

	if redisAddr != "" || redisPassword != "" || redisDB != 0 {
		t.Errorf("unexpected redis config")
	}

	if len(kafkaBrokers) != 0 || kafkaTopic != "watchlist-events" {
		t.Errorf("unexpected kafka config")
	}

	if len(adminEmails) != 0 || ratePerSecond != 5 || rateBurst != 10 {
		t.Errorf("unexpected admin/rate config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("API_MOV_KEY", "tmdb-token")
	os.Setenv("API_STR_KEY", "rapid-key")
	os.Setenv("TMDB_URL", "http://tmdb.local/3")
	os.Setenv("STREAMING_COUNTRY", "gb")
	os.Setenv("UPSTREAM_TIMEOUT_SECOND", "3")

	os.Setenv("SECRET_KEY", "supersecret")
	os.Setenv("SESSION_TTL_SECOND", "300")

	os.Setenv("DB_URI", "postgres://user:password@db:5432/movies?sslmode=disable")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("DB_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_ADDR", "redis.example.com:6380")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_DB", "2")

	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	os.Setenv("KAFKA_TOPIC", "events")

	os.Setenv("ADMIN_EMAILS", "root@example.com,,ops@example.com")
	os.Setenv("AUTH_RATE_PER_SECOND", "0.5")
	os.Setenv("AUTH_RATE_BURST", "3")

	appHost, appPort, logLevel,
		movieAPIKey, streamingAPIKey,
		tmdbURL, _, _, streamingCountry, upstreamTimeout,
		secretKey, sessionTTL,
		dbURI, dbMaxOpen, dbMaxIdle,
		redisAddr, redisPassword, redisDB,
		kafkaBrokers, kafkaTopic,
		adminEmails, ratePerSecond, rateBurst,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appHost != "127.0.0.1" || appPort != "9090" || logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if movieAPIKey != "tmdb-token" || streamingAPIKey != "rapid-key" || tmdbURL != "http://tmdb.local/3" ||
		streamingCountry != "gb" || upstreamTimeout != 3 {
		t.Errorf("unexpected upstream config")
	}
	if secretKey != "supersecret" || sessionTTL != 300 {
		t.Errorf("unexpected session config")
	}
	if dbURI != "postgres://user:password@db:5432/movies?sslmode=disable" || dbMaxOpen != 20 || dbMaxIdle != 10 {
		t.Errorf("unexpected database config")
	}
	if redisAddr != "redis.example.com:6380" || redisPassword != "redispass" || redisDB != 2 {
		t.Errorf("unexpected redis config")
	}
	if len(kafkaBrokers) != 2 || kafkaBrokers[0] != "kafka-1:9092" || kafkaBrokers[1] != "kafka-2:9092" || kafkaTopic != "events" {
		t.Errorf("unexpected kafka config: %v", kafkaBrokers)
	}
	if len(adminEmails) != 2 || ratePerSecond != 0.5 || rateBurst != 3 {
		t.Errorf("unexpected admin/rate config: %v", adminEmails)
	}
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()
	os.Setenv("SESSION_TTL_SECOND", "forever")

	_, _, _,
		_, _,
		_, _, _, _, _,
		_, _,
		_, _, _,
		_, _, _,
		_, _,
		_, _, _,
		err := parseConfig("nonexistent.env")

	if err == nil {
		t.Fatal("expected error for non-numeric SESSION_TTL_SECOND")
	}
}

func runWith(ctx context.Context, logLevel, dbURI, redisAddr string) error {
	return run(ctx,
		"127.0.0.1", "0", logLevel,
		"", "",
		"http://127.0.0.1:1", "http://127.0.0.1:1", "http://127.0.0.1:1", "us", 1,
		"testsecret", 60,
		dbURI, 4, 2,
		redisAddr, "", 0,
		nil, "watchlist-events",
		nil, 5, 10,
	)
}

func TestRun_SQLiteMemorySessions(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	dbURI := "sqlite:///" + filepath.Join(t.TempDir(), "run.db")
	if err := runWith(ctx, "debug", dbURI, ""); err != nil {
		t.Fatalf("expected run to stop cleanly, got error: %v", err)
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	if err := runWith(context.Background(), "loud", "sqlite:///unused.db", ""); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestRun_UnsupportedDatabase(t *testing.T) {
	if err := runWith(context.Background(), "info", "mysql://user@localhost/db", ""); err == nil {
		t.Fatal("expected error for unsupported DB_URI scheme")
	}
}

func TestRun_PostgresRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	testCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dbURI := fmt.Sprintf("postgres://user:password@%s:%s/testdb?sslmode=disable", pgHost, pgPort.Port())
	redisAddr := fmt.Sprintf("%s:%s", redisHost, redisPort.Port())

	if err := runWith(testCtx, "debug", dbURI, redisAddr); err != nil {
		t.Fatalf("expected run to succeed, got error: %v", err)
	}
}

func TestNewKafkaWriter(t *testing.T) {
	w := newKafkaWriter([]string{"kafka-1:9092", "kafka-2:9092"}, "watchlist-events")
	defer w.Close()

	if w.Topic != "watchlist-events" {
		t.Errorf("unexpected topic: %s", w.Topic)
	}
	if w.BatchSize != 1 || w.BatchTimeout > 50*time.Millisecond {
		t.Errorf("writer would hold events: size=%d timeout=%s", w.BatchSize, w.BatchTimeout)
	}
	if w.Addr == nil || !w.AllowAutoTopicCreation {
		t.Errorf("unexpected writer config: %+v", w)
	}
}
