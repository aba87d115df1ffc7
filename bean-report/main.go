package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ledgertools/beanreport"
	"github.com/ledgertools/beanreport/cmd"
	"github.com/ledgertools/beanreport/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	version = flag.Bool("V", false, "print version and exit")
	doc     = flag.String("doc", "", "print a documentation topic and exit (start with -doc readme)")
)

func main() {
	// Shell completion: the positional argument is the ledger file.
	topics, _ := docs.GetAllTopics()
	completer := &complete.Command{
		Flags: map[string]complete.Predictor{
			"doc": predict.Set(topics),
		},
		Args: predict.Files("*"),
	}
	completer.Complete("bean-report")

	flag.Parse()

	if *version {
		fmt.Println(beanreport.Version)
		return
	}
	if *doc != "" {
		if err := cmd.PrintTopic(os.Stdout, *doc); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	os.Exit(int(cmd.Run(context.Background(), flag.Args(), os.Stdout, os.Stderr)))
}
