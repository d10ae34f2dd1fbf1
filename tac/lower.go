package tac

import (
	"minipyc/ast"
	"minipyc/util"
)

// Lowerer converts a fully resolved program into a bundle of three-address
// items.  It assumes every identifier in the program carries a symbol: it
// must only be run after resolution succeeds.
type Lowerer struct {
	// b is the bundle being built.
	b *Bundle

	// tempCount is the number of temporaries generated so far.  Temporaries
	// are numbered from one.
	tempCount int
}

// NewLowerer creates a new lowerer with an empty bundle.
func NewLowerer() *Lowerer {
	return &Lowerer{b: &Bundle{}}
}

// Lower lowers the program into its bundle of three-address items.
func (l *Lowerer) Lower(prog *ast.Program) *Bundle {
	for _, stmt := range prog.Statements {
		l.lowerStmt(stmt)
	}

	return l.b
}

// -----------------------------------------------------------------------------

func (l *Lowerer) lowerStmt(stmt ast.ASTNode) {
	switch v := stmt.(type) {
	case *ast.Assignment:
		value := l.lowerExpr(v.Value)
		l.emit(&Instruction{
			OpCode:   OpCopy,
			Dest:     VarRef{Sym: v.Target.Sym},
			Operands: []Value{value},
		})
	case *ast.FuncDef:
		l.lowerFuncDef(v)
	case *ast.ReturnStmt:
		var operands []Value
		if v.Value != nil {
			operands = []Value{l.lowerExpr(v.Value)}
		}

		l.emit(&Instruction{OpCode: OpReturn, Operands: operands})
	case *ast.ExprStmt:
		l.lowerExpr(v.Expr)
	}
}

func (l *Lowerer) lowerFuncDef(fd *ast.FuncDef) {
	l.emit(&FuncBegin{
		Name: fd.Name,
		Params: util.Map(fd.Params, func(param *ast.Identifier) string {
			return param.Name
		}),
	})

	for _, stmt := range fd.Body {
		l.lowerStmt(stmt)
	}

	// a function that does not end in a return gets a bare one
	if _, ok := fd.Body[len(fd.Body)-1].(*ast.ReturnStmt); !ok {
		l.emit(&Instruction{OpCode: OpReturn})
	}

	l.emit(&FuncEnd{Name: fd.Name})
}

// lowerExpr lowers an expression post-order and returns the value holding its
// result.  Leaf expressions lower to their operand directly: only operators
// and calls generate temporaries.
func (l *Lowerer) lowerExpr(expr ast.ASTExpr) Value {
	switch v := expr.(type) {
	case *ast.IntLit:
		return IntConst{Value: v.Value}
	case *ast.Identifier:
		return VarRef{Sym: v.Sym}
	case *ast.BinaryOp:
		lhs := l.lowerExpr(v.Lhs)
		rhs := l.lowerExpr(v.Rhs)

		dest := l.newTemp()
		l.emit(&Instruction{
			OpCode:   binaryOpCode(v.Op.Name),
			Dest:     dest,
			Operands: []Value{lhs, rhs},
		})
		return dest
	case *ast.Call:
		args := util.Map(v.Args, l.lowerExpr)

		for _, arg := range args {
			l.emit(&Instruction{OpCode: OpParam, Operands: []Value{arg}})
		}

		dest := l.newTemp()
		l.emit(&Instruction{
			OpCode: OpCall,
			Dest:   dest,
			Operands: []Value{
				FuncRef{Sym: v.Func.Sym},
				IntConst{Value: int64(len(args))},
			},
		})
		return dest
	}

	return nil
}

// -----------------------------------------------------------------------------

func (l *Lowerer) emit(item Item) {
	l.b.Items = append(l.b.Items, item)
}

func (l *Lowerer) newTemp() Temp {
	l.tempCount++
	return Temp{ID: l.tempCount}
}

func binaryOpCode(opName string) int {
	switch opName {
	case "+":
		return OpAdd
	case "-":
		return OpSub
	case "*":
		return OpMul
	default:
		return OpDiv
	}
}
