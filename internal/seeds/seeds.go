package seeds

import (
	"fmt"
	"log"
	"os"

	"github.com/BlueMoonStudio/BM-Backend/internal/auth"
	"github.com/BlueMoonStudio/BM-Backend/internal/db"
	"github.com/BlueMoonStudio/BM-Backend/internal/gallery"
	"github.com/BlueMoonStudio/BM-Backend/internal/products"
	"github.com/BlueMoonStudio/BM-Backend/internal/services"
	"github.com/goccy/go-yaml"
	"golang.org/x/crypto/bcrypt"
)

// fixture is the on-disk seed file shape. Sample rows use their own structs
// so the models stay free of yaml tags.
type fixture struct {
	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Services []serviceSeed `yaml:"services"`
	Products []productSeed `yaml:"products"`
	Photos   []photoSeed   `yaml:"photos"`
}

type serviceSeed struct {
	Name        string  `yaml:"name"`
	Descripcion string  `yaml:"descripcion"`
	Price       float64 `yaml:"price"`
	ImgURL      string  `yaml:"img_url"`
}

type productSeed struct {
	Nombre      string  `yaml:"nombre"`
	Price       float64 `yaml:"price"`
	Descripcion string  `yaml:"descripcion"`
	Material    string  `yaml:"material"`
	ImgURL      string  `yaml:"img_url"`
}

type photoSeed struct {
	Fecha       string `yaml:"fecha"`
	ImgURL      string `yaml:"img_url"`
	Descripcion string `yaml:"descripcion"`
}

// SeedAll loads the fixture, installs the admin credential (hashing the
// password), and fills any empty catalog tables with the sample rows.
// Re-running it resets the admin password and leaves populated tables alone.
func SeedAll(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}

	if fx.Admin.Username == "" || fx.Admin.Password == "" {
		return fmt.Errorf("fixture must define admin credentials")
	}

	if err := seedAdmin(fx.Admin.Username, fx.Admin.Password); err != nil {
		return err
	}
	if err := seedServices(fx.Services); err != nil {
		return err
	}
	if err := seedProducts(fx.Products); err != nil {
		return err
	}
	if err := seedPhotos(fx.Photos); err != nil {
		return err
	}

	log.Println("Seeding complete")
	return nil
}

func seedAdmin(username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := auth.Admin{Username: username, HashedPassword: string(hashed)}
	if err := db.DB.Create(&admin).Error; err != nil {
		if !db.IsUniqueViolation(err) {
			return fmt.Errorf("create admin: %w", err)
		}
		// Admin already exists — treat a re-run as a password reset.
		if err := db.DB.Model(&auth.Admin{}).
			Where("username = ?", username).
			Update("hashed_password", string(hashed)).Error; err != nil {
			return fmt.Errorf("update admin password: %w", err)
		}
		log.Printf("Admin %q already existed, password reset", username)
	}
	return nil
}

func seedServices(rows []serviceSeed) error {
	var count int64
	if err := db.DB.Model(&services.Service{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count services: %w", err)
	}
	if count > 0 || len(rows) == 0 {
		return nil
	}

	for _, row := range rows {
		svc := services.Service{
			Name:        row.Name,
			Descripcion: row.Descripcion,
			Price:       row.Price,
			ImgURL:      row.ImgURL,
		}
		if err := db.DB.Create(&svc).Error; err != nil {
			return fmt.Errorf("create service %q: %w", row.Name, err)
		}
	}
	log.Printf("Seeded %d services", len(rows))
	return nil
}

func seedProducts(rows []productSeed) error {
	var count int64
	if err := db.DB.Model(&products.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 || len(rows) == 0 {
		return nil
	}

	for _, row := range rows {
		p := products.Product{
			Nombre:      row.Nombre,
			Price:       row.Price,
			Descripcion: row.Descripcion,
			Material:    row.Material,
			ImgURL:      row.ImgURL,
		}
		if err := db.DB.Create(&p).Error; err != nil {
			return fmt.Errorf("create product %q: %w", row.Nombre, err)
		}
	}
	log.Printf("Seeded %d products", len(rows))
	return nil
}

func seedPhotos(rows []photoSeed) error {
	var count int64
	if err := db.DB.Model(&gallery.Photo{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count photos: %w", err)
	}
	if count > 0 || len(rows) == 0 {
		return nil
	}

	for _, row := range rows {
		photo := gallery.Photo{
			Fecha:       row.Fecha,
			ImgURL:      row.ImgURL,
			Descripcion: row.Descripcion,
		}
		if err := db.DB.Create(&photo).Error; err != nil {
			return fmt.Errorf("create photo %q: %w", row.ImgURL, err)
		}
	}
	log.Printf("Seeded %d photos", len(rows))
	return nil
}
