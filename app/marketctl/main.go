// marketctl lists the marketplace catalog and buys items from the command line
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketfront/app/bootstrap"
	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/domain"
)

const usage = `usage: marketctl [flags] <command>

commands:
  list              print the unsold items
  buy --token N     buy item N at its listed price

flags:
`

type options struct {
	configFile string
	tokenId    int64
	asJson     bool
	timeout    time.Duration
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flags := pflag.NewFlagSet("marketctl", pflag.ContinueOnError)
	flags.StringVar(&opts.configFile, "config", "infra/configs/config.yaml", "config file")
	flags.Int64Var(&opts.tokenId, "token", -1, "token id to buy")
	flags.BoolVar(&opts.asJson, "json", false, "print json instead of a table")
	flags.DurationVar(&opts.timeout, "timeout", 5*time.Minute,
		"bounds start-up and catalog loading; a submitted purchase is bounded by purchase.confirmTimeout instead")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	return flags
}

func main() {
	opts := &options{}
	flags := newFlagSet(opts)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(2)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(opts.configFile)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.SetDebug(viper.GetBool("debug"))

	c, cancel := ctx.WithTimeout(ctx.Background(), opts.timeout)
	defer cancel()

	app, err := bootstrap.New(c)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch cmd := flags.Arg(0); cmd {
	case "list":
		err = list(c, app, opts.asJson)
	case "buy":
		err = buy(c, app, opts.tokenId, opts.asJson)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func list(c ctx.Ctx, app *bootstrap.App, asJson bool) error {
	items, err := app.Catalog.Load(c)
	if err != nil {
		return err
	}
	if asJson {
		return printJson(items)
	}
	if len(items) == 0 {
		fmt.Println(domain.EmptyCatalogMessage)
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tPRICE (ETH)\tNAME\tSELLER\tIMAGE")
	for _, item := range items {
		seller := string(item.Seller)
		if item.SellerName != "" {
			seller = item.SellerName
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", item.TokenId, item.Price, item.Name, seller, item.Image)
	}
	return w.Flush()
}

func buy(c ctx.Ctx, app *bootstrap.App, tokenId int64, asJson bool) error {
	if tokenId < 0 {
		return domain.ErrInvalidTokenId
	}
	if _, err := app.Catalog.Load(c); err != nil {
		return err
	}
	item, ok := app.Catalog.State().Find(tokenId)
	if !ok {
		return fmt.Errorf("token %d: %w", tokenId, domain.ErrNotFound)
	}

	// runs past c's deadline once the sale is submitted
	res, err := app.Purchase.Purchase(c, item)
	if err != nil {
		return err
	}
	if asJson {
		return printJson(res)
	}
	fmt.Printf("bought token %d for %s ETH in tx %s (block %d)\n", res.TokenId, res.Value, res.TxHash, res.BlockNumber)
	return nil
}

func printJson(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
