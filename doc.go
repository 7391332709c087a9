/*
Package functional provides the minimum-of-two operation as a stateless, generic function object, together with
a small executor for running operations on a goroutine other than the caller's and a conformance suite that checks
both.

The operation comes in three forms. The fixed form names the operand type explicitly and satisfies BinaryOp, which
makes it convenient to pass around as a value.

	var op functional.BinaryOp[int] = functional.Minimum[int]{}
	op.Apply(1, 0) // 0

The deduced form infers the operand type from the call site.

	functional.Min('a', 'b') // 'a'
	functional.Min("pear", "apple") // "apple"

The common form accepts numeric operands of different types. They are compared exactly, signed against unsigned
and float against integer, and the smaller one is converted to a type named by the caller. MinCommon panics if that
operand cannot be represented in the named type; TryMinCommon reports it instead.

	functional.MinCommon[int64](int32(-1), uint8(1)) // -1

In every form the result is lhs if lhs is not greater than rhs, and rhs otherwise. The result is always one of the
operands, never a new value, and the operation neither allocates nor modifies its operands. The result for unordered
values such as NaN is unspecified.

To run the operation in a separate execution context, create and start an Executor. Work submitted to the executor
runs on its worker goroutine, and a Future is returned that can be awaited for the result.

	executor, err := functional.NewExecutor(functional.WithTimeout(time.Second))
	if err != nil {
	    panic(err)
	}
	executor.Start()
	defer executor.Stop()

	result := functional.Invoke[int](executor, functional.Minimum[int]{}, -1, 1).Await()
	if err := result.Error(); err != nil {
	    panic(err)
	}
	fmt.Println(result.Success()) // -1

Note that the result of a future must be checked for an error before its value is consumed. A future resolves with
ErrTimeout if the work does not complete in time, and with ErrExecutorNotRunning if the executor was never started
or was stopped before the work ran.

Finally, VerifyAll checks the built-in cases in every form on the host and on the executor and reports any
disagreement as a *VerificationError.

	if err := functional.VerifyAll(executor, functional.Cases()); err != nil {
	    log.Fatal(err)
	}

The same scenarios are also checked while the package is compiled, using constant expressions, so a build that
disagrees with them does not produce a binary.
*/
package functional
