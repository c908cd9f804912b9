/*
Package anthem verifies claims about answer-set programs and first-order
theories by reducing them to first-order proof obligations discharged by an
external automated theorem prover.

Package structure is as follows:

■ internal/asp: the abstract-syntax representation of (ground) answer-set
programs, together with its parser and formatter.

■ internal/fol: the abstract-syntax representation of first-order theories
over here-and-there / classical logic, together with its parser and three
formatters (default, TPTP, ILTP).

■ internal/theory: annotated formulas, specifications, user guides and
TPTP problems — the data that flows between translation, simplification
and the task pipeline.

■ internal/analyze: tightness and private-recursion analysis of programs.

■ internal/translate: τ*, Γ, completion, ordered completion and tightening.

■ internal/simplify: the here-and-there and classical rewriting engines.

■ internal/task: assembly and decomposition of strong- and
external-equivalence verification tasks into TPTP problem sets.

■ internal/prover: the external prover driver (process spawn, SZS status
extraction, bounded-parallelism pool).

■ cmd/anthem: the command-line front end (analyze, translate, tighten,
verify).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package anthem
