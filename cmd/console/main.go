// Терминальная консоль оператора SwiftConnect: мастер оформления подписки,
// управление клиентами и каталогом пакетов поверх REST API.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"swiftconnect_backend/internal/console"
	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/pkg/client"
)

type app struct {
	api     *client.Client
	in      *bufio.Scanner
	wizard  *console.Wizard
	screen  *console.CustomerScreen
	catalog *console.PackageScreen
	tab     string
}

func main() {
	baseURL := flag.String("api", "http://localhost:4000/api/v1", "base URL of the SwiftConnect API")
	flag.Parse()

	api := client.New(*baseURL)
	a := &app{
		api:     api,
		in:      bufio.NewScanner(os.Stdin),
		wizard:  console.NewWizard(api),
		screen:  console.NewCustomerScreen(api),
		catalog: console.NewPackageScreen(api),
		tab:     "wizard",
	}

	ctx := context.Background()

	if err := a.login(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "login failed:", err)
		os.Exit(1)
	}

	fmt.Println("Tabs: wizard | customers | packages. Type 'help' for commands, 'quit' to exit.")
	a.repl(ctx)
}

func (a *app) login(ctx context.Context) error {
	email := a.prompt("Email: ")
	password := a.prompt("Password: ")

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Signed in as %s (%s)\n", resp.Staff.Name, resp.Staff.Role)
	return nil
}

func (a *app) repl(ctx context.Context) {
	for {
		line := a.prompt(fmt.Sprintf("[%s]> ", a.tab))
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "quit", "exit":
			return
		case "help":
			a.printHelp()
		case "wizard", "customers", "packages":
			a.switchTab(cmd)
		default:
			a.dispatch(ctx, cmd, args)
		}
	}
}

// switchTab меняет вкладку; уход с мастера сбрасывает его состояние
func (a *app) switchTab(tab string) {
	if a.tab == "wizard" && tab != "wizard" {
		a.wizard.Reset()
	}
	a.tab = tab
	fmt.Println("Switched to", tab)
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) {
	var err error
	switch a.tab {
	case "wizard":
		err = a.wizardCommand(ctx, cmd, args)
	case "customers":
		err = a.customerCommand(ctx, cmd, args)
	case "packages":
		err = a.packageCommand(ctx, cmd, args)
	}
	if err != nil {
		fmt.Println("error:", err)
	}
}

// --- Мастер подписки ---

func (a *app) wizardCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "status":
		fmt.Printf("Step %d of 4\n", a.wizard.Step())
		return nil
	case "customer":
		return a.wizardCustomer(ctx)
	case "list":
		return a.wizardListPackages(ctx)
	case "toggle":
		if len(args) != 1 {
			return fmt.Errorf("usage: toggle <packageId>")
		}
		pkg, ok := a.catalogPackage(args[0])
		if !ok {
			return fmt.Errorf("package %s not in catalog, run 'list' first", args[0])
		}
		a.wizard.TogglePackage(pkg)
		return nil
	case "next":
		return a.wizardNext()
	case "back":
		a.wizard.Back()
		return nil
	case "cycle":
		if len(args) != 1 {
			return fmt.Errorf("usage: cycle <monthly|three_months|yearly>")
		}
		return a.wizard.SetCycle(models.PaymentCycle(args[0]))
	case "totals":
		t := a.wizard.Totals()
		fmt.Printf("Cycle %s: total %.2f, savings %.2f\n", t.PaymentCycle, t.Total, t.Savings)
		return nil
	case "confirm":
		return a.wizardConfirm(ctx)
	case "reset":
		a.wizard.Reset()
		return nil
	}
	return fmt.Errorf("unknown wizard command: %s", cmd)
}

func (a *app) wizardCustomer(ctx context.Context) error {
	req := &dto.CreateCustomerRequest{
		FullName:     a.prompt("Full name: "),
		CnicPassport: a.prompt("CNIC/Passport: "),
		MobileNumber: a.prompt("Mobile number: "),
		Email:        a.prompt("Email: "),
		Address:      a.prompt("Address: "),
		HomeAddress:  a.prompt("Home address: "),
	}

	if err := a.wizard.SubmitCustomer(ctx, req); err != nil {
		return err
	}
	fmt.Println("Customer saved:", a.wizard.Customer().ID)
	return nil
}

func (a *app) wizardListPackages(ctx context.Context) error {
	packages, err := a.wizard.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	for _, pkg := range packages {
		mark := " "
		if a.wizard.IsSelected(pkg.ID) {
			mark = "*"
		}
		fmt.Printf("%s %s  %-10s %-10s m=%.2f 3m=%.2f y=%.2f\n",
			mark, pkg.ID, pkg.Name, pkg.Speed, pkg.MonthlyPrice, pkg.ThreeMonthsPrice, pkg.YearlyPrice)
	}
	return nil
}

func (a *app) wizardNext() error {
	switch a.wizard.Step() {
	case console.StepPackageSelection:
		return a.wizard.NextFromPackages()
	case console.StepPaymentPlan:
		return a.wizard.NextFromPlan()
	default:
		return fmt.Errorf("use 'customer' or 'confirm' on this step")
	}
}

func (a *app) wizardConfirm(ctx context.Context) error {
	result, err := a.wizard.Confirm(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Created %d subscription(s) for %s\n", len(result.Subscriptions), result.Customer.FullName)
	for _, f := range result.Failures {
		fmt.Printf("  failed %s: %v\n", f.Package.Name, f.Err)
	}
	if len(result.Failures) == 0 {
		a.wizard.Reset()
	}
	return nil
}

func (a *app) catalogPackage(id string) (models.Package, bool) {
	for _, pkg := range a.wizard.Catalog() {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return models.Package{}, false
}

// --- Экран клиентов ---

func (a *app) customerCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "load":
		if err := a.screen.Load(ctx); err != nil {
			return err
		}
		return a.printCustomers()
	case "find":
		a.screen.SetFilter(strings.Join(args, " "))
		return a.printCustomers()
	case "open":
		if len(args) != 1 {
			return fmt.Errorf("usage: open <customerId>")
		}
		customer, err := a.screen.Select(ctx, args[0])
		if err != nil {
			return err
		}
		a.printCustomerDetail(customer)
		return nil
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete <customerId>")
		}
		return a.screen.Delete(ctx, args[0])
	case "unsubscribe":
		if len(args) != 1 {
			return fmt.Errorf("usage: unsubscribe <subscriptionId>")
		}
		return a.screen.DeleteSubscription(ctx, args[0])
	case "pay":
		if len(args) != 2 {
			return fmt.Errorf("usage: pay <paymentId> <amount>")
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %s", args[1])
		}
		payment, err := a.screen.RecordPayment(ctx, args[0], amount)
		if err != nil {
			return err
		}
		fmt.Printf("Payment %s: status %s, pending %.2f\n", payment.ID, payment.Status, payment.PendingAmount)
		return nil
	}
	return fmt.Errorf("unknown customers command: %s", cmd)
}

func (a *app) printCustomers() error {
	for _, c := range a.screen.Visible() {
		fmt.Printf("%s  %-25s %-25s %-15s %-15s due %.2f\n",
			c.ID, c.FullName, c.Email, c.MobileNumber, c.Status, c.TotalDue)
	}
	return nil
}

func (a *app) printCustomerDetail(c *dto.CustomerResponse) {
	fmt.Printf("%s (%s)\nStatus: %s  Total due: %.2f\n", c.FullName, c.Email, c.Status, c.TotalDue)
	for _, sub := range c.Subscriptions {
		name := sub.PackageID
		if sub.Package != nil {
			name = sub.Package.Name
		}
		fmt.Printf("  subscription %s: %s, %s, %.2f, next due %s\n",
			sub.ID, name, sub.PaymentCycle, sub.Price, sub.NextDueDate.Format("2006-01-02"))
		for _, p := range sub.Payments {
			fmt.Printf("    payment %s: %s, pending %.2f, due %s\n",
				p.ID, p.Status, p.PendingAmount, p.DueDate.Format("2006-01-02"))
		}
	}
}

// --- Экран пакетов ---

func (a *app) packageCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "load":
		if err := a.catalog.Load(ctx); err != nil {
			return err
		}
		for _, pkg := range a.catalog.Packages() {
			fmt.Printf("%s  %-10s %-10s m=%.2f 3m=%.2f y=%.2f popular=%v\n",
				pkg.ID, pkg.Name, pkg.Speed, pkg.MonthlyPrice, pkg.ThreeMonthsPrice, pkg.YearlyPrice, pkg.IsPopular)
		}
		return nil
	case "create":
		return a.packageCreate(ctx)
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete <packageId>")
		}
		return a.catalog.Delete(ctx, args[0])
	case "rename":
		if len(args) < 2 {
			return fmt.Errorf("usage: rename <packageId> <new name>")
		}
		name := strings.Join(args[1:], " ")
		_, err := a.catalog.Update(ctx, args[0], &dto.UpdatePackageRequest{Name: &name})
		return err
	}
	return fmt.Errorf("unknown packages command: %s", cmd)
}

func (a *app) packageCreate(ctx context.Context) error {
	req := &dto.CreatePackageRequest{
		Name:  a.prompt("Name: "),
		Speed: a.prompt("Speed: "),
	}

	var err error
	if req.MonthlyPrice, err = strconv.ParseFloat(a.prompt("Monthly price: "), 64); err != nil {
		return err
	}
	if req.ThreeMonthsPrice, err = strconv.ParseFloat(a.prompt("Three months price: "), 64); err != nil {
		return err
	}
	if req.YearlyPrice, err = strconv.ParseFloat(a.prompt("Yearly price: "), 64); err != nil {
		return err
	}
	if features := a.prompt("Features (comma separated): "); features != "" {
		for _, f := range strings.Split(features, ",") {
			req.Features = append(req.Features, strings.TrimSpace(f))
		}
	}

	pkg, err := a.catalog.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Println("Created package", pkg.ID)
	return nil
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) printHelp() {
	fmt.Println(`wizard:    status | customer | list | toggle <id> | next | back | cycle <c> | totals | confirm | reset
customers: load | find <q> | open <id> | delete <id> | unsubscribe <subId> | pay <paymentId> <amount>
packages:  load | create | rename <id> <name> | delete <id>`)
}
