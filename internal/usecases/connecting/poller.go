package connecting

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/lucidanalytics/lucid-analytics-client/internal/config"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/log"
)

// StatusPoller revalida periodicamente o estado das três integrações.
// As sondagens rodam em paralelo e são independentes: uma integração fora
// do ar não atrasa nem derruba as outras.
type StatusPoller struct {
	scheduler *gocron.Scheduler
	cfg       config.StatusPoll

	meta     *MetaManager
	lucidbot *LucidBotManager
	dropi    *DropiManager

	pollRunning bool
	pollMutex   sync.Mutex
}

func NewStatusPoller(
	meta *MetaManager,
	lucidbot *LucidBotManager,
	dropi *DropiManager,
	cfg config.StatusPoll,
) *StatusPoller {
	return &StatusPoller{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       cfg,
		meta:      meta,
		lucidbot:  lucidbot,
		dropi:     dropi,
	}
}

// Enabled informa se a revalidação periódica está habilitada por configuração
func (p *StatusPoller) Enabled() bool {
	return p.cfg.Enabled
}

// Start agenda a revalidação periódica e para o agendador quando o contexto
// for cancelado
func (p *StatusPoller) Start(ctx context.Context) error {
	if !p.cfg.Enabled {
		log.L.Info("Revalidação periódica de integrações desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", p.cfg.CronSchedule).Info("Iniciando revalidação periódica de integrações")

	_, err := p.scheduler.Cron(p.cfg.CronSchedule).Do(func() {
		p.PollOnce(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "connecting: erro ao agendar revalidação de integrações")
	}

	p.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando revalidação periódica de integrações")
		p.scheduler.Stop()
	}()

	return nil
}

// PollOnce sonda as três integrações em paralelo. Execuções sobrepostas são
// ignoradas.
func (p *StatusPoller) PollOnce(ctx context.Context) {
	p.pollMutex.Lock()
	if p.pollRunning {
		p.pollMutex.Unlock()
		log.L.Debug("Revalidação de integrações já em andamento, ignorando")
		return
	}
	p.pollRunning = true
	p.pollMutex.Unlock()

	defer func() {
		p.pollMutex.Lock()
		p.pollRunning = false
		p.pollMutex.Unlock()
	}()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		p.meta.RefreshStatus(ctx)
	}()

	go func() {
		defer wg.Done()
		p.lucidbot.RefreshStatus(ctx)
	}()

	go func() {
		defer wg.Done()
		p.dropi.RefreshStatus(ctx)
	}()

	wg.Wait()

	log.ForContext(ctx).WithFields(log.Fields{
		"meta":     p.meta.Connected(),
		"lucidbot": p.lucidbot.Connected(),
		"dropi":    p.dropi.Connected(),
	}).Debug("Revalidação de integrações concluída")
}
