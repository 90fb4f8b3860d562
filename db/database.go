package db

import "gorm.io/gorm"

// Database hides the gorm handle behind an interface so repositories
// can be constructed against anything that yields a *gorm.DB.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
