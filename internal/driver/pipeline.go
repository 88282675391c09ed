package driver

import (
	"fmt"
	"os"
	"time"

	"tclc/internal/diag"
	"tclc/internal/diffeng"
	"tclc/internal/ir"
	"tclc/internal/parser"
	"tclc/internal/source"
	"tclc/internal/types"
)

// LowerResult is the outcome of running the forward pipeline (parse +
// print) on one case.
type LowerResult struct {
	Kernel *ir.Kernel
	Code   string
	Diags  *diag.Bag
}

// Lower parses c.Kernel and renders it via printFn, reporting
// diagnostics into a fresh bag bounded by maxDiagnostics (§7).
func Lower(c *Case, maxDiagnostics int, printFn func(*ir.Kernel) (string, error)) (LowerResult, error) {
	bag := diag.NewBag(maxDiagnostics)
	elemType, err := types.FromDataType(c.DataType)
	if err != nil {
		return LowerResult{Diags: bag}, err
	}
	k, err := parser.Parse(c.Kernel, parser.Options{
		Name:     c.Name,
		ElemType: elemType,
		Ins:      c.Ins,
		Outs:     c.Outs,
		Reporter: diag.BagReporter{Bag: bag},
	})
	if err != nil {
		return LowerResult{Diags: bag}, fmt.Errorf("driver: lower %s: %w", c.Name, err)
	}
	code, err := printFn(k)
	if err != nil {
		return LowerResult{Kernel: k, Diags: bag}, fmt.Errorf("driver: print %s: %w", c.Name, err)
	}
	return LowerResult{Kernel: k, Code: code, Diags: bag}, nil
}

// DiffResult is the outcome of differentiating one case against every
// name in its grad_to list.
type DiffResult struct {
	Cases []*Case
	Diags *diag.Bag
}

// Diff differentiates c.Kernel, whose LHS is the first name in c.Outs,
// with respect to every name in c.GradTo, producing one generated Case
// per target (§6.1, §4.4).
func Diff(c *Case, maxDiagnostics int) (DiffResult, error) {
	bag := diag.NewBag(maxDiagnostics)
	if len(c.GradTo) == 0 {
		return DiffResult{Diags: bag}, fmt.Errorf("driver: case %s has no grad_to targets", c.Name)
	}
	if len(c.Outs) == 0 {
		return DiffResult{Diags: bag}, fmt.Errorf("driver: case %s has no outs", c.Name)
	}
	results, err := diffeng.Differentiate(c.Kernel, c.Outs[0], c.GradTo)
	if err != nil {
		diag.Error(diag.BagReporter{Bag: bag}, diag.DiffAmbiguousTarget, source.Span{}, err.Error())
		return DiffResult{Diags: bag}, fmt.Errorf("driver: diff %s: %w", c.Name, err)
	}
	cases := make([]*Case, 0, len(results))
	for _, r := range results {
		cases = append(cases, &Case{
			Name:     "d" + c.Name + "_" + r.Target,
			Ins:      r.Ins,
			Outs:     r.Outs,
			DataType: c.DataType,
			Kernel:   r.Kernel,
		})
	}
	return DiffResult{Cases: cases, Diags: bag}, nil
}

// processOne runs read -> parse -> lower for one case file, emitting
// progress events at each stage. It is the unit of work shared by the
// sequential Run and the concurrent Lint dry run. outPath == ""
// selects the --lint dry run: the write stage is skipped entirely,
// since --lint never touches disk (§5).
func processOne(sink ProgressSink, caseName, kernelPath, outPath string, maxDiagnostics int, printFn func(*ir.Kernel) (string, error)) error {
	start := time.Now()
	emit(sink, caseName, StageRead, StatusWorking, nil, 0)
	c, err := LoadCase(kernelPath)
	if err != nil {
		emit(sink, caseName, StageRead, StatusError, err, time.Since(start))
		return err
	}
	emit(sink, caseName, StageParse, StatusWorking, nil, 0)
	res, err := Lower(c, maxDiagnostics, printFn)
	if err != nil {
		emit(sink, caseName, StageParse, StatusError, err, time.Since(start))
		return err
	}
	if outPath == "" {
		emit(sink, caseName, StageParse, StatusDone, nil, time.Since(start))
		return nil
	}
	emit(sink, caseName, StageLower, StatusDone, nil, time.Since(start))
	emit(sink, caseName, StageWrite, StatusWorking, nil, 0)
	if err := os.WriteFile(outPath, []byte(res.Code), 0o600); err != nil {
		emit(sink, caseName, StageWrite, StatusError, err, time.Since(start))
		return err
	}
	emit(sink, caseName, StageWrite, StatusDone, nil, time.Since(start))
	return nil
}
