package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"racetix/internal/accounts"
	"racetix/internal/config"
	"racetix/internal/ledger"
	"racetix/internal/logger"
	"racetix/internal/models"
	"racetix/internal/receipt"
	"racetix/internal/store"
	"racetix/internal/tickets"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
)

type app struct {
	dir *accounts.Directory
	ldg *ledger.Service
	in  *bufio.Scanner
}

func main() {
	envErr := godotenv.Load()
	cfg := config.Load()

	log := logger.NewLogger(cfg.Log.Dir)
	defer log.Close()

	if envErr != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	// Keep the interactive menus readable; the full trail goes to the file.
	log.SetTerminalOutput(false)

	sqldb, err := sql.Open("sqlite", cfg.Database.File)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to open SQLite database: %v", err))
	}
	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	defer bunDB.Close()

	st := store.New(bunDB)
	if err := st.Init(context.Background()); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to initialize blob store: %v", err))
	}
	log.Info("DATABASE", fmt.Sprintf("SQLite store ready at %s", cfg.Database.File))

	dir, err := accounts.NewDirectory(st, cfg.Admin, log)
	if err != nil {
		// Covers the unreadable-store case: no recovery path, stop here.
		log.Fatal("STORE", fmt.Sprintf("Cannot start: %v", err))
	}

	ldg := ledger.NewService(dir, st, log)

	a := &app{
		dir: dir,
		ldg: ldg,
		in:  bufio.NewScanner(os.Stdin),
	}
	a.run()
	log.Info("APP", "Session ended")
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) run() {
	heading.Println("Welcome to the Racing Ticket Office")
	for {
		fmt.Println("\n[1] Login  [2] Register  [0] Exit")
		switch a.prompt("Choice") {
		case "1":
			a.login()
		case "2":
			a.register()
		case "0":
			return
		}
	}
}

func (a *app) login() {
	username := a.prompt("Username")
	password := a.prompt("Password")

	sess, err := a.dir.Authenticate(username, password)
	if err != nil {
		failure.Println(err)
		return
	}
	if sess.Admin {
		a.adminDashboard()
		return
	}
	a.customerDashboard(sess)
}

func (a *app) register() {
	username := a.prompt("Username")
	password := a.prompt("Password")

	if _, err := a.dir.Register(username, password); err != nil {
		failure.Println(err)
		return
	}
	success.Println("Account created")
}

func (a *app) customerDashboard(sess *accounts.Session) {
	heading.Printf("\nWelcome %s\n", sess.Username)
	for {
		fmt.Println("\n[1] Update email  [2] Update phone  [3] Update city")
		fmt.Println("[4] Buy tickets   [5] View orders   [6] Delete last order  [0] Logout")
		switch a.prompt("Choice") {
		case "1":
			a.updateField(sess.Account, "email")
		case "2":
			a.updateField(sess.Account, "phone")
		case "3":
			a.updateField(sess.Account, "city")
		case "4":
			a.buyTickets(sess)
		case "5":
			fmt.Println(receipt.FormatOrders(a.ldg.Orders(sess.Account)))
		case "6":
			if _, err := a.ldg.DeleteLastOrder(sess.Account); err != nil {
				failure.Println(err)
			} else {
				success.Println("Order deleted")
			}
		case "0":
			return
		}
	}
}

func (a *app) updateField(acct *models.Account, field string) {
	value := a.prompt(titleCase(field))
	if err := a.dir.UpdateField(acct, field, value); err != nil {
		failure.Println(err)
		return
	}
	success.Printf("%s updated\n", field)
}

func (a *app) buyTickets(sess *accounts.Session) {
	fmt.Println("\nTicket types:")
	for _, kind := range tickets.Kinds() {
		fmt.Printf("  - %s\n", kind)
	}

	ticketType := a.prompt("Ticket type")
	discount := a.prompt("Discount % (if any)")
	method := a.prompt(fmt.Sprintf("Payment method (%s / %s)", models.CreditCard, models.DebitCard))

	ord, err := a.ldg.Purchase(sess.Account, ticketType, method, discount, time.Now())
	if err != nil {
		failure.Println(err)
		return
	}

	success.Println("\n" + receipt.Invoice(sess.Username, *ord))

	if strings.EqualFold(a.prompt("Save QR ticket? (y/n)"), "y") {
		png, err := receipt.QR(*ord)
		if err != nil {
			failure.Println(err)
			return
		}
		name := fmt.Sprintf("ticket-%s.png", ord.OrderID)
		if err := os.WriteFile(name, png, 0644); err != nil {
			failure.Println(err)
			return
		}
		success.Printf("QR saved to %s\n", name)
	}
}

func (a *app) adminDashboard() {
	heading.Println("\nAdministrator Dashboard")
	for {
		fmt.Println("\n[1] Ticket sales per day  [2] Reset ticket sales")
		fmt.Println("[3] Customer list  [4] Modify customer  [5] Delete customer  [6] View customer orders  [0] Logout")
		switch a.prompt("Choice") {
		case "1":
			a.showSales()
		case "2":
			if err := a.ldg.ResetSales(); err != nil {
				failure.Println(err)
			} else {
				success.Println("Ticket sales reset to 0")
			}
		case "3":
			for username, acct := range a.dir.List() {
				fmt.Printf("%s | %s | %s | %s\n", username, acct.Email, acct.Phone, acct.City)
			}
		case "4":
			a.modifyCustomer()
		case "5":
			if err := a.dir.Delete(a.prompt("Username")); err != nil {
				failure.Println(err)
			} else {
				success.Println("Customer removed")
			}
		case "6":
			acct, err := a.dir.Get(a.prompt("Username"))
			if err != nil {
				failure.Println(err)
			} else {
				fmt.Println(receipt.FormatOrders(a.ldg.Orders(acct)))
			}
		case "0":
			return
		}
	}
}

func (a *app) showSales() {
	sales, err := a.ldg.SalesByDay()
	if err != nil {
		failure.Println(err)
		return
	}
	if len(sales) == 0 {
		fmt.Println("No sales recorded")
		return
	}
	dates := make([]string, 0, len(sales))
	for d := range sales {
		dates = append(dates, d)
	}
	slices.Sort(dates)
	for _, d := range dates {
		fmt.Printf("%s: %d tickets\n", d, sales[d])
	}
}

func (a *app) modifyCustomer() {
	acct, err := a.dir.Get(a.prompt("Username"))
	if err != nil {
		failure.Println(err)
		return
	}
	for _, field := range models.ProfileFields {
		value := a.prompt(fmt.Sprintf("%s [%s]", titleCase(field), currentValue(acct, field)))
		if value == "" {
			continue
		}
		if err := a.dir.UpdateField(acct, field, value); err != nil {
			failure.Println(err)
			return
		}
	}
	success.Println("Customer updated")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func currentValue(acct *models.Account, field string) string {
	switch field {
	case "email":
		return acct.Email
	case "phone":
		return acct.Phone
	case "city":
		return acct.City
	}
	return ""
}
