package main

import (
	"fmt"
	"strings"

	"github.com/astef/bitslice"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var commands = []*cli.Command{
	{
		Name:   "show",
		Usage:  "prints the register in hex, decimal and binary, with its aliases",
		Flags:  []cli.Flag{HighlightFlag},
		Action: show,
	},
	{
		Name:      "get",
		Usage:     "reads bits, ranges or aliases",
		ArgsUsage: "KEY...",
		Action:    get,
	},
	{
		Name:      "set",
		Usage:     "writes bits, ranges or aliases in order and prints the register",
		ArgsUsage: "KEY=VALUE...",
		Action:    set,
	},
	{
		Name:      "eval",
		Usage:     "applies an operator to the whole register and prints the result",
		ArgsUsage: "OP [OPERAND]",
		Action:    eval,
	},
}

func loadField(cliCtx *cli.Context) (*bitslice.BitField, error) {
	width := cliCtx.Int(WidthFlag.Name)
	if width < 0 {
		return nil, errors.Wrapf(bitslice.ErrInvalidWidth, "width %d must not be negative", width)
	}
	bf, err := bitslice.Parse(cliCtx.String(ValueFlag.Name), uint(width))
	if err != nil {
		return nil, errors.Wrap(err, "could not load register")
	}
	for _, alias := range cliCtx.StringSlice(AliasFlag.Name) {
		name, binding, ok := strings.Cut(alias, "=")
		if !ok {
			return nil, fmt.Errorf("alias %q must be in the form name=high:low", alias)
		}
		r, err := bitslice.ParseRange(binding)
		if err != nil {
			return nil, errors.Wrapf(err, "alias %q must bind a bit or a range", alias)
		}
		if err := bf.AddAlias(strings.TrimSpace(name), r.High, r.Low); err != nil {
			return nil, err
		}
	}
	log.WithFields(logrus.Fields{
		"value":   bf.String(),
		"width":   bf.Width(),
		"aliases": len(bf.Aliases().Names()),
	}).Debug("Loaded register")
	return bf, nil
}

func show(cliCtx *cli.Context) error {
	bf, err := loadField(cliCtx)
	if err != nil {
		return err
	}
	au := aurora.NewAurora(!cliCtx.Bool(NoColorFlag.Name))
	w := cliCtx.App.Writer

	binary := bf.Bits()
	if highlight := cliCtx.String(HighlightFlag.Name); highlight != "" {
		key, err := bitslice.ParseKey(highlight)
		if err != nil {
			return err
		}
		r, err := bf.Resolve(key)
		if err != nil {
			return err
		}
		// bit i is printed at position width-1-i
		from, to := bf.Width()-1-r.High, bf.Width()-r.Low
		binary = binary[:from] + au.Green(binary[from:to]).String() + binary[to:]
	}

	fmt.Fprintln(w, bf)
	fmt.Fprintf(w, "0b%s\n", binary)
	for _, name := range bf.Aliases().Names() {
		sub, err := bf.Get(bitslice.Alias(name))
		if err != nil {
			return err
		}
		r, err := bf.Aliases().Resolve(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s%v = %v\n", au.Bold(name), r, sub)
	}
	return nil
}

func get(cliCtx *cli.Context) error {
	if cliCtx.NArg() == 0 {
		return errors.New("get needs at least one key")
	}
	bf, err := loadField(cliCtx)
	if err != nil {
		return err
	}
	for _, arg := range cliCtx.Args().Slice() {
		key, err := bitslice.ParseKey(arg)
		if err != nil {
			return err
		}
		sub, err := bf.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(cliCtx.App.Writer, "%s = %v\n", arg, sub)
	}
	return nil
}

func set(cliCtx *cli.Context) error {
	if cliCtx.NArg() == 0 {
		return errors.New("set needs at least one KEY=VALUE pair")
	}
	bf, err := loadField(cliCtx)
	if err != nil {
		return err
	}
	for _, arg := range cliCtx.Args().Slice() {
		keyText, valueText, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%q is not in the form KEY=VALUE", arg)
		}
		key, err := bitslice.ParseKey(keyText)
		if err != nil {
			return err
		}
		value, err := bitslice.Parse(valueText, 0)
		if err != nil {
			return err
		}
		if err := bf.Set(key, value); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"key":    keyText,
			"value":  value.String(),
			"result": bf.String(),
		}).Debug("Wrote bits")
	}
	fmt.Fprintln(cliCtx.App.Writer, bf)
	fmt.Fprintf(cliCtx.App.Writer, "0b%s\n", bf.Bits())
	return nil
}

func eval(cliCtx *cli.Context) error {
	args := cliCtx.Args()
	if args.Len() == 0 {
		return errors.New("eval needs an operator")
	}
	op, err := parseOp(args.First())
	if err != nil {
		return err
	}
	bf, err := loadField(cliCtx)
	if err != nil {
		return err
	}

	var rhs bitslice.Integer
	if op == bitslice.OpNot {
		if args.Len() != 1 {
			return fmt.Errorf("%v takes no operand", op)
		}
	} else {
		if args.Len() != 2 {
			return fmt.Errorf("%v needs exactly one operand", op)
		}
		operand, err := bitslice.Parse(args.Get(1), 0)
		if err != nil {
			return err
		}
		if (op == bitslice.OpDiv || op == bitslice.OpMod) && operand.Int().IsZero() {
			return errors.New("division by zero")
		}
		rhs = operand
	}

	res := bf.Apply(op, rhs)
	log.WithFields(logrus.Fields{
		"op":     op.String(),
		"lhs":    bf.String(),
		"result": res.String(),
	}).Debug("Applied operator")

	fmt.Fprintln(cliCtx.App.Writer, res)
	fmt.Fprintf(cliCtx.App.Writer, "0b%s\n", res.Bits())
	return nil
}

func parseOp(name string) (bitslice.Op, error) {
	for _, op := range bitslice.Ops() {
		if strings.EqualFold(op.String(), name) {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operator %q", name)
}
