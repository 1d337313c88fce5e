package tgbot

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/botstorage"
	botmodel "github.com/goserg/trucoserver/bot/model"
	"github.com/goserg/trucoserver/internal/config"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/service"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	bot *tgbotapi.BotAPI

	botStorage botstorage.BotStorage
	log        *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc

	subs *subscriptions

	commands *Commands
}

var ErrBadRequest = errors.New("comando desconocido, probá /help")

func New(svc service.Services, bs botstorage.BotStorage, cfg config.Config, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}
	bot.Debug = cfg.Server.Debug

	subs := newSubs()
	users, err := bs.ListUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		for _, subType := range users[i].Subscriptions {
			subs.Add(subType, users[i].ID)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &Bot{
		ctx:        ctx,
		cancel:     cancel,
		bot:        bot,
		botStorage: bs,
		log:        log.WithField("from", "tg_bot"),
		subs:       subs,
	}
	b.commands = NewCommands(
		svc,
		bs,
		cfg.TgBot.AdminPass,
		func(id int) {
			b.subs.Add(botmodel.NewMatch, id)
		},
		func(id int) {
			b.subs.Remove(botmodel.NewMatch, id)
		},
	)
	svc.Matches.OnMatchCreated(func(m domain.Match) {
		b.sendNotification(botmodel.NewMatch, "Nuevo partido\n"+formatMatch(m))
	})
	return b, nil
}

// Run polls telegram until Stop is called.
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	b.log.WithField("bot", b.bot.Self.UserName).Info("bot started")

	for {
		select {
		case <-b.ctx.Done():
			b.bot.StopReceivingUpdates()
			b.log.Info("bot stopped")
			return
		case update := <-updates:
			b.handleMessage(b.ctx, update)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	log := b.log.WithFields(logrus.Fields{
		"user_id": tgUser.ID,
		"text":    update.Message.Text,
	})
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("command panicked")
		}
	}()
	user, err := b.botStorage.GetUser(int(tgUser.ID))
	if err != nil {
		if !errors.Is(err, botstorage.ErrUserNotFound) {
			log.WithError(err).Error("unable to get user from db")
			return
		}
		user, err = b.botStorage.NewUser(botmodel.User{
			ID:        int(tgUser.ID),
			FirstName: tgUser.FirstName,
			Username:  tgUser.UserName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		if err != nil {
			log.WithError(err).Error("unable to create user")
			return
		}
	}

	err = b.botStorage.Log(user, update.Message.Text)
	if err != nil {
		log.WithError(err).Error("can't log to db")
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	err = b.commands.RunCommand(ctx, user, update.Message.Command(), update.Message.CommandArguments(), &msg)
	if err != nil {
		msg.Text = err.Error()
	}
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

func (b *Bot) Stop() {
	b.cancel()
}

func (b *Bot) sendNotification(event botmodel.EventType, text string) {
	for _, userID := range b.subs.GetUserIDs(event) {
		msg := tgbotapi.NewMessage(int64(userID), text)
		if _, err := b.bot.Send(msg); err != nil {
			b.log.WithError(err).WithField("user_id", userID).Error("notification not sent")
		}
	}
}
