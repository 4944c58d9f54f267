package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studybuddy-backend/internal/config"
	"studybuddy-backend/internal/database"
	"studybuddy-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CourseData struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type UserData struct {
	Email        string `yaml:"email"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Password     string `yaml:"password"`
	CollegeLevel string `yaml:"college_level,omitempty"`
}

type GroupData struct {
	Name       string   `yaml:"name"`
	CourseCode string   `yaml:"course_code"`
	MaxMembers int      `yaml:"max_members"`
	IsPrivate  bool     `yaml:"is_private"`
	Owner      string   `yaml:"owner"`
	Members    []string `yaml:"members,omitempty"`
}

// File structures
type CatalogFile struct {
	Colleges []string `yaml:"colleges"`
	Majors   []string `yaml:"majors"`
}

type CoursesFile struct {
	Courses []CourseData `yaml:"courses"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type GroupsFile struct {
	Groups []GroupData `yaml:"groups"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	catalog, err := loadCatalog(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	courses, err := loadCourses(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load courses: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	groups, err := loadGroups(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}

	// Lookup tables first
	for _, name := range catalog.Colleges {
		if err := db.Where(models.College{CollegeName: name}).FirstOrCreate(&models.College{}).Error; err != nil {
			return fmt.Errorf("failed to create college %s: %w", name, err)
		}
	}
	for _, name := range catalog.Majors {
		if err := db.Where(models.Major{MajorName: name}).FirstOrCreate(&models.Major{}).Error; err != nil {
			return fmt.Errorf("failed to create major %s: %w", name, err)
		}
	}
	log.Printf("📋 Catalog: %d colleges, %d majors", len(catalog.Colleges), len(catalog.Majors))

	courseMap := make(map[string]*models.Course)
	courseCreated := 0
	for _, courseData := range courses {
		course, created, err := createCourse(db, courseData)
		if err != nil {
			return fmt.Errorf("failed to create course %s: %w", courseData.Code, err)
		}
		courseMap[course.CourseCode] = course
		if created {
			courseCreated++
		}
	}
	log.Printf("📋 Courses: %d created, %d total", courseCreated, len(courses))

	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[user.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	groupCreated := 0
	for _, groupData := range groups {
		created, err := createGroup(db, groupData, courseMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create group %s: %w", groupData.Name, err)
		}
		if created {
			groupCreated++
		}
	}
	log.Printf("📋 Groups: %d created, %d total", groupCreated, len(groups))

	return nil
}

func loadCatalog(dataDir string) (CatalogFile, error) {
	var catalog CatalogFile
	err := walkYAML(dataDir, "catalog", func(data []byte) error {
		var file CatalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		catalog.Colleges = append(catalog.Colleges, file.Colleges...)
		catalog.Majors = append(catalog.Majors, file.Majors...)
		return nil
	})
	return catalog, err
}

func loadCourses(dataDir string) ([]CourseData, error) {
	var allCourses []CourseData
	err := walkYAML(dataDir, "courses", func(data []byte) error {
		var file CoursesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allCourses = append(allCourses, file.Courses...)
		return nil
	})
	return allCourses, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData
	err := walkYAML(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allUsers = append(allUsers, file.Users...)
		return nil
	})
	return allUsers, err
}

func loadGroups(dataDir string) ([]GroupData, error) {
	var allGroups []GroupData
	err := walkYAML(dataDir, "groups", func(data []byte) error {
		var file GroupsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allGroups = append(allGroups, file.Groups...)
		return nil
	})
	return allGroups, err
}

// walkYAML calls fn with the content of every .yaml file whose name contains kind
func walkYAML(dataDir, kind string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func createCourse(db *gorm.DB, courseData CourseData) (*models.Course, bool, error) {
	code := strings.ToUpper(strings.TrimSpace(courseData.Code))
	var course models.Course
	err := db.Where("course_code = ?", code).First(&course).Error
	if err == nil {
		return &course, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query course: %w", err)
	}

	course = models.Course{CourseCode: code, CourseName: courseData.Name}
	if err := db.Create(&course).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create course: %w", err)
	}
	return &course, true, nil
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	if len(userData.Password) < 8 {
		return nil, false, fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	user = models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    userData.FirstName,
		LastName:     userData.LastName,
		CollegeLevel: userData.CollegeLevel,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

// createGroup inserts the group with its owner and members in one transaction.
// Groups are matched by name within a course; existing groups are left untouched.
func createGroup(db *gorm.DB, groupData GroupData, courseMap map[string]*models.Course, userMap map[string]*models.User) (bool, error) {
	course, ok := courseMap[strings.ToUpper(groupData.CourseCode)]
	if !ok {
		return false, fmt.Errorf("unknown course %q", groupData.CourseCode)
	}
	owner, ok := userMap[strings.ToLower(groupData.Owner)]
	if !ok {
		return false, fmt.Errorf("unknown owner %q", groupData.Owner)
	}
	if groupData.MaxMembers < 1+len(groupData.Members) {
		return false, fmt.Errorf("max_members %d cannot hold owner and %d members", groupData.MaxMembers, len(groupData.Members))
	}

	var existing models.StudyGroup
	err := db.Where("course_id = ? AND group_name = ?", course.CourseID, groupData.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query group: %w", err)
	}

	return true, db.Transaction(func(tx *gorm.DB) error {
		group := models.StudyGroup{
			GroupName:  groupData.Name,
			MaxMembers: groupData.MaxMembers,
			IsPrivate:  groupData.IsPrivate,
			CourseID:   course.CourseID,
		}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.GroupMember{GroupID: group.GroupID, UserID: owner.UserID, Role: models.MemberRoleOwner}).Error; err != nil {
			return err
		}
		for _, email := range groupData.Members {
			member, ok := userMap[strings.ToLower(email)]
			if !ok {
				return fmt.Errorf("unknown member %q", email)
			}
			if member.UserID == owner.UserID {
				continue
			}
			if err := tx.Create(&models.GroupMember{GroupID: group.GroupID, UserID: member.UserID, Role: models.MemberRoleMember}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
