package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/connecting"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/insighting"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/format"
)

// bandLabels traduz o status de CPA para o rótulo exibido no painel
var bandLabels = map[insighting.Band]string{
	insighting.BandSinVentas: "Sin ventas",
	insighting.BandEscala:    "Escala",
	insighting.BandVasBien:   "Vas bien",
	insighting.BandOptimizar: "Optimizar",
	insighting.BandApagar:    "Apagar",
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func renderDashboard(view *insighting.View, derived insighting.Derived) {
	fmt.Printf("Período: %s a %s\n\n", view.Range.StartString(), view.Range.EndString())

	s := derived.Summary
	fmt.Println("Resumen")
	fmt.Printf("  Gasto:    %s\n", format.Currency(fp(s.TotalSpend)))
	fmt.Printf("  Ingresos: %s\n", format.Currency(fp(s.TotalRevenue)))
	fmt.Printf("  Leads:    %s   Ventas: %s\n", format.Count(ip(s.TotalLeads)), format.Count(ip(s.TotalSales)))
	fmt.Printf("  CPA:      %s   ROAS:   %s\n", format.Currency(fp(s.AverageCPA)), format.Roas(fp(s.AverageROAS)))
	fmt.Printf("  Utilidad: %s\n\n", format.Currency(fp(s.Profit)))

	fmt.Println("Anuncios por estado")
	for _, band := range insighting.AllBands {
		fmt.Printf("  %-12s %d\n", bandLabels[band], derived.BandCounts[band])
	}
	fmt.Println()

	if len(derived.Ads) == 0 {
		fmt.Println("Ningún anuncio coincide con los filtros.")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ANUNCIO\tCAMPAÑA\tGASTO\tVENTAS\tCPA\tROAS\tESTADO")
		for _, ad := range derived.Ads {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				ad.AdName,
				ad.CampaignName,
				format.Currency(fp(ad.Spend)),
				format.Count(ip(ad.Sales)),
				format.Currency(fp(ad.CPA)),
				format.Roas(fp(ad.ROAS)),
				bandLabels[insighting.ClassifyCPA(ad.CPA)],
			)
		}
		w.Flush()
	}

	if view.Orders != nil {
		o := view.Orders
		fmt.Println("\nPedidos (Dropi)")
		fmt.Printf("  Total: %d   Entregados: %d   Devueltos: %d   En ruta: %d   Cancelados: %d\n",
			o.Total, o.Delivered, o.Returned, o.EnRuta, o.Cancelled)
		fmt.Printf("  Tasa de entrega: %s   Utilidad entregada: %s\n",
			format.Percent(fp(o.DeliveryRate)), format.Currency(fp(o.DeliveredProfit)))
	}

	if view.Wallet != nil {
		rec := derived.Reconciliation
		fmt.Println("\nBilletera")
		fmt.Printf("  Ganancia promedio: %s   Costo promedio de devolución: %s\n",
			format.Currency(fp(rec.AvgProfit)), format.Currency(fp(rec.AvgReturnCost)))
		fmt.Printf("  Abonos pendientes: %d   Cargos pendientes: %d   Impacto proyectado: %s\n",
			rec.PendingPayoutCount, rec.PendingChargeCount, format.Currency(fp(rec.ProjectedImpact)))
	}

	for source, msg := range view.PartialErrors {
		fmt.Fprintf(os.Stderr, "\nAviso: %s no disponible (%s)\n", source, msg)
	}
}

func renderProjection(p insighting.Projection) {
	fmt.Println("Proyección de utilidad (lineal, qué pasaría si)")
	fmt.Printf("  Por entregar: %d   Por devolver: %d\n", p.ToDeliver, p.ToReturn)
	fmt.Printf("  Ganancia proyectada: %s\n", format.Currency(fp(p.Gain)))
	fmt.Printf("  Pérdida proyectada:  %s\n", format.Currency(fp(p.Loss)))
	fmt.Printf("  Gasto publicitario:  %s\n", format.Currency(fp(p.AdSpend)))
	fmt.Printf("  Utilidad actual:     %s\n", format.Currency(fp(p.CurrentUtility)))
	fmt.Printf("  Total proyectado:    %s\n", format.Currency(fp(p.ProjectedTotal)))
}

func renderStatus(meta *connecting.MetaManager, lucidbot *connecting.LucidBotManager, dropi *connecting.DropiManager) {
	fmt.Printf("Meta Ads:  %s", connLabel(meta.Connected()))
	if accounts := meta.CachedAccounts(); len(accounts) > 0 {
		fmt.Printf(" (%d cuentas)", len(accounts))
	}
	fmt.Println()

	fmt.Printf("LucidBot:  %s", connLabel(lucidbot.Connected()))
	if status := lucidbot.Status(); status.Connected && status.PageID != "" {
		fmt.Printf(" (page %s)", status.PageID)
	}
	fmt.Println()

	fmt.Printf("Dropi:     %s", connLabel(dropi.Connected()))
	if status := dropi.Status(); status.Connected && status.DropiUserName != "" {
		fmt.Printf(" (%s, %s)", status.DropiUserName, status.Country)
	}
	fmt.Println()
}

func connLabel(connected bool) string {
	if connected {
		return "Conectado"
	}
	return "No conectado"
}

func renderChat(messages []domain.ChatMessage) {
	if len(messages) == 0 {
		fmt.Println("Sin mensajes todavía.")
		return
	}

	for _, msg := range messages {
		prefix := "Tú"
		if msg.Role == domain.ChatRoleAssistant {
			prefix = "Asistente"
		}
		fmt.Printf("%s: %s\n", prefix, msg.Content)
	}
}
