// Package arcmap implements the arc-mapping protocol: the Mapper capability
// (three transformation methods plus Identity) and the driver that applies it across every state
// and arc of an FST, including the superfinal-state machinery some mappers
// need to represent a final-weight transformation as an ordinary arc.
//
// Grounded on arc_map.rs and invert_weight_mapper.rs from the Rust original
// this module's semantics were distilled from, expressed in the teacher's
// sentinel-error idiom.
package arcmap
