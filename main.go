package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/handlers"
	"github.com/DANGPP/btlthayPhong-sub000/logging"
	"github.com/DANGPP/btlthayPhong-sub000/repositories"
	"github.com/DANGPP/btlthayPhong-sub000/services"
	"github.com/DANGPP/btlthayPhong-sub000/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Todo Service...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: MONGO_URI is not set in the environment variables.")
	}
	mongoDBName := os.Getenv("MONGO_DB_NAME")
	if mongoDBName == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: MONGO_DB_NAME is not set in the environment variables.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	db := client.Database(mongoDBName)

	notificationsBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "notifications-cb",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' state changed from %s to %s", name, from.String(), to.String())
		},
	})

	taskRepo := repositories.NewTaskRepository(db)
	workspaceRepo := repositories.NewWorkspaceRepository(db)
	sessionRepo := repositories.NewFocusSessionRepository(db)

	var reminders services.ReminderScheduler
	if notificationsURL := os.Getenv("NOTIFICATIONS_SERVICE_URL"); notificationsURL != "" {
		reminders = services.NewNotificationService(utils.NewHTTPClient(), notificationsBreaker, notificationsURL)
	} else {
		logging.Logger.Warn("Event ID: NOTIFICATIONS_DISABLED, Description: NOTIFICATIONS_SERVICE_URL not set, reminders will not be scheduled")
	}

	taskService := services.NewTaskService(taskRepo, reminders)
	workspaceService := services.NewWorkspaceService(workspaceRepo)
	statisticsService := services.NewStatisticsService(taskRepo, sessionRepo)

	taskHandler := handlers.NewTaskHandler(taskService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService, taskService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)

	r := mux.NewRouter()

	r.HandleFunc("/api/todos", taskHandler.CreateTodo).Methods(http.MethodPost)
	r.HandleFunc("/api/todos", taskHandler.GetTodos).Methods(http.MethodGet)
	r.HandleFunc("/api/todos/batch", taskHandler.BatchCreateTodos).Methods(http.MethodPost)
	r.HandleFunc("/api/todos/conflicts", taskHandler.CheckConflicts).Methods(http.MethodPost)
	r.HandleFunc("/api/todos/timeline", taskHandler.GetTimeline).Methods(http.MethodGet)
	r.HandleFunc("/api/todos/status", taskHandler.ChangeTodoStatus).Methods(http.MethodPost)
	r.HandleFunc("/api/todos/{todoID}", taskHandler.GetTodoByID).Methods(http.MethodGet)
	r.HandleFunc("/api/todos/{todoID}", taskHandler.UpdateTodo).Methods(http.MethodPut)
	r.HandleFunc("/api/todos/{todoID}", taskHandler.DeleteTodo).Methods(http.MethodDelete)
	r.HandleFunc("/api/todos/{todoID}/advance", taskHandler.AdvanceTodoStatus).Methods(http.MethodPost)

	r.HandleFunc("/api/workspaces", workspaceHandler.CreateWorkspace).Methods(http.MethodPost)
	r.HandleFunc("/api/workspaces/{workspaceID}", workspaceHandler.GetWorkspace).Methods(http.MethodGet)
	r.HandleFunc("/api/workspaces/{workspaceID}/members", workspaceHandler.GetMembers).Methods(http.MethodGet)
	r.HandleFunc("/api/workspaces/{workspaceID}/members/{memberID}", workspaceHandler.RemoveMember).Methods(http.MethodDelete)
	r.HandleFunc("/api/workspaces/{workspaceID}/todos", workspaceHandler.GetWorkspaceTodos).Methods(http.MethodGet)
	r.HandleFunc("/api/workspaces/{workspaceID}/invitations", workspaceHandler.InviteMember).Methods(http.MethodPost)
	r.HandleFunc("/api/invitations/{invitationID}/respond", workspaceHandler.RespondInvitation).Methods(http.MethodPost)

	r.HandleFunc("/api/statistics/overview", statisticsHandler.GetOverview).Methods(http.MethodGet)

	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
