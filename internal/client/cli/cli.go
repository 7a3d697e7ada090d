package cli

import (
	"github.com/iudanet/campusctl/internal/client/config"
	"github.com/iudanet/campusctl/internal/client/iocli"
	"github.com/iudanet/campusctl/internal/client/session"
	"github.com/iudanet/campusctl/internal/client/storage"
	"github.com/iudanet/campusctl/internal/client/student"
)

// Cli связывает команды терминала с сессией и фасадом данных
type Cli struct {
	io      iocli.IO
	session *session.Manager
	student *student.Service
	config  *config.Resolver
	store   storage.AuthStorage
}

// New создает CLI поверх собранных сервисов
func New(io iocli.IO, sess *session.Manager, studentSvc *student.Service, cfg *config.Resolver, store storage.AuthStorage) *Cli {
	return &Cli{
		io:      io,
		session: sess,
		student: studentSvc,
		config:  cfg,
		store:   store,
	}
}

// PrintUsage выводит справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println(usageText)
}

// Usage возвращает текст справки для вывода до сборки CLI
func Usage() string {
	return usageText
}
