// Package mockstore is a development stand-in for the generic CRUD data
// store the client talks to. It keeps the users, transactions, and budgets
// collections in memory behind plain REST/JSON endpoints, assigns uuid ids
// on create, and applies no business rules beyond payload decoding: filters,
// uniqueness, and validation are the client's problem.
package mockstore

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/mymoney/internal/client/models"
)

// Server holds the in-memory collections. All state is lost on shutdown.
type Server struct {
	mu           sync.RWMutex
	users        []models.User
	transactions []models.Transaction
	budgets      []models.Budget
}

// NewServer returns an empty store.
func NewServer() *Server {
	return &Server{}
}

// Router builds the gin engine with all store routes. CORS is wide open so
// browser front-ends can talk to the store during development.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.GET("/users", s.listUsers)
	r.POST("/users", s.createUser)

	r.GET("/transactions", s.listTransactions)
	r.POST("/transactions", s.createTransaction)
	r.PUT("/transactions/:id", s.updateTransaction)
	r.DELETE("/transactions/:id", s.deleteTransaction)

	r.GET("/budgets", s.listBudgets)
	r.POST("/budgets", s.createBudget)
	r.PUT("/budgets/:id", s.updateBudget)

	return r
}

func (s *Server) listUsers(c *gin.Context) {
	username := c.Query("username")

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if username == "" || u.Username == username {
			out = append(out, u)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u.ID = uuid.NewString()

	s.mu.Lock()
	s.users = append(s.users, u)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, u)
}

func (s *Server) listTransactions(c *gin.Context) {
	userID := c.Query("userId")

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if userID == "" || t.UserID == userID {
			out = append(out, t)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createTransaction(c *gin.Context) {
	var t models.Transaction
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.ID = uuid.NewString()

	s.mu.Lock()
	s.transactions = append(s.transactions, t)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, t)
}

func (s *Server) updateTransaction(c *gin.Context) {
	var t models.Transaction
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.ID = c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == t.ID {
			s.transactions[i] = t
			c.JSON(http.StatusOK, t)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func (s *Server) deleteTransaction(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			c.JSON(http.StatusOK, gin.H{})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func (s *Server) listBudgets(c *gin.Context) {
	userID := c.Query("userId")

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Budget, 0, len(s.budgets))
	for _, b := range s.budgets {
		if userID == "" || b.UserID == userID {
			out = append(out, b)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createBudget(c *gin.Context) {
	var b models.Budget
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b.ID = uuid.NewString()

	s.mu.Lock()
	s.budgets = append(s.budgets, b)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, b)
}

func (s *Server) updateBudget(c *gin.Context) {
	var b models.Budget
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b.ID = c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.budgets {
		if s.budgets[i].ID == b.ID {
			s.budgets[i] = b
			c.JSON(http.StatusOK, b)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
