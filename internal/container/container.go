package container

import (
	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savelife-bd/savelife-server/config"
	"github.com/savelife-bd/savelife-server/internal/application"
	"github.com/savelife-bd/savelife-server/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire from these singletons; main sets them once
// before serving.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoDB     *mongo.Database
	redisClient *redis.Client
	gcsClient   *storage.Client

	verifier   *helpers.FirebaseVerifier
	gateway    application.CheckoutGateway
	receiptPub *helpers.RabbitPublisher
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetMongoDB(db *mongo.Database) { mongoDB = db }
func GetMongoDB() *mongo.Database   { return mongoDB }

func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

func SetGCS(s *storage.Client) { gcsClient = s }
func GetGCS() *storage.Client  { return gcsClient }

func SetVerifier(v *helpers.FirebaseVerifier) { verifier = v }
func GetVerifier() *helpers.FirebaseVerifier  { return verifier }

func SetGateway(g application.CheckoutGateway) { gateway = g }
func GetGateway() application.CheckoutGateway  { return gateway }

func SetReceiptPub(p *helpers.RabbitPublisher) { receiptPub = p }
func GetReceiptPub() *helpers.RabbitPublisher  { return receiptPub }
