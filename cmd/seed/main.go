// Command seed populates the database with sample accounts, products and
// orders for local development.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/gittydia/IMS-BAO/internal/config"
	"github.com/gittydia/IMS-BAO/internal/db"
	"github.com/gittydia/IMS-BAO/internal/fulfillment"
	"github.com/gittydia/IMS-BAO/internal/models"
	"github.com/gittydia/IMS-BAO/internal/repo"
)

var colleges = []string{
	"College of Engineering", "College of Science", "College of Business",
	"College of Arts", "College of Education",
}

var programs = []string{
	"Computer Science", "Information Technology", "Business Administration",
	"Accountancy", "Engineering",
}

var sampleProducts = []struct {
	name     string
	category string
	price    string
	quantity int
}{
	{"Calculus Textbook", "Book", "1250.00", 25},
	{"Physics Lab Manual", "Book", "480.00", 8},
	{"Polo Shirt M", "Uniform", "650.00", 40},
	{"PE Uniform L", "Uniform", "720.00", 0},
	{"Lab Coat S", "Uniform", "890.00", 5},
	{"Engineering Notebook", "Supplies", "95.00", 120},
	{"Scientific Calculator", "Equipment", "1850.00", 12},
	{"Drafting Set", "Supplies", "340.00", 3},
}

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("❌ Could not migrate database:", err)
	}

	users := repo.NewPostgresUserRepository(database)
	students := repo.NewPostgresStudentRepository(database)
	products := repo.NewPostgresProductRepository(database)
	orders := repo.NewPostgresOrderRepository(database)
	txns := repo.NewPostgresTransactionRepository(database)

	log.Println("🌱 Starting database seeding...")
	now := time.Now().UTC()

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	studentHash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)

	for i := 1; i <= 3; i++ {
		_, err := users.CreateUser(models.User{
			Email:        fmt.Sprintf("admin%d@example.com", i),
			PasswordHash: string(adminHash),
			Role:         "admin",
			Firstname:    fmt.Sprintf("Admin%d", i),
			Lastname:     "Staff",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatalf("❌ seeding admins: %v", err)
		}
	}

	var studentIDs []int
	for i := 1; i <= 10; i++ {
		user, err := users.CreateUser(models.User{
			Email:        fmt.Sprintf("student%d@example.com", i),
			PasswordHash: string(studentHash),
			Role:         "student",
			Firstname:    fmt.Sprintf("Student%d", i),
			Lastname:     "Sample",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatalf("❌ seeding student users: %v", err)
		}
		student, err := students.Create(models.Student{
			UserID:    &user.ID,
			Firstname: user.Firstname,
			Lastname:  user.Lastname,
			College:   colleges[i%len(colleges)],
			Program:   programs[i%len(programs)],
		})
		if err != nil {
			log.Fatalf("❌ seeding students: %v", err)
		}
		studentIDs = append(studentIDs, student.ID)
	}

	var productIDs []int
	for _, sp := range sampleProducts {
		price, _ := decimal.NewFromString(sp.price)
		created, err := products.Create(models.Product{
			Name:      sp.name,
			Category:  sp.category,
			Price:     price,
			Quantity:  sp.quantity,
			CreatedAt: now.Format(time.RFC3339),
			UpdatedAt: now.Format(time.RFC3339),
		})
		if err != nil {
			log.Fatalf("❌ seeding products: %v", err)
		}
		productIDs = append(productIDs, created.ID)
	}

	statuses := []string{
		fulfillment.StatusPending, fulfillment.StatusReady,
		fulfillment.StatusClaimed, fulfillment.StatusCancelled,
	}
	for i := 0; i < 12; i++ {
		productID := productIDs[i%len(productIDs)]
		order, err := orders.Create(models.Order{
			ProductID:   productID,
			DateToClaim: now.Add(time.Duration(i+1) * 24 * time.Hour),
			Status:      statuses[i%len(statuses)],
			Amount:      decimal.NewFromInt(int64(100 + i*50)),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			log.Fatalf("❌ seeding orders: %v", err)
		}
		if _, err := txns.Create(models.Transaction{
			OrderID:   order.ID,
			StudentID: studentIDs[i%len(studentIDs)],
			CreatedAt: now,
		}); err != nil {
			log.Fatalf("❌ seeding transactions: %v", err)
		}
	}

	log.Println("🎉 Database seeding completed successfully!")
}
